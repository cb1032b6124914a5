package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danmuck/tlwire/internal/testutil/testlog"
)

func TestTypeReference(t *testing.T) {
	testlog.Start(t)
	tr := NewTranslator("tl")
	cases := []struct {
		ref    string
		module string
		want   string
	}{
		{"int", "", "int32"},
		{"long", "", "int64"},
		{"double", "", "float64"},
		{"string", "", "string"},
		{"Bool", "", "bool"},
		{"bytes", "", "[]byte"},
		{"Vector<int>", "", "[]int32"},
		{"Vector<Vector<int>>", "", "[][]int32"},
		{"vector<Vector<vector<string>>>", "", "[][][]string"},
		{"auth.SentCode", "auth", "SentCode"},
		{"auth.SentCode", "", "auth.SentCode"},
		{"auth.SentCode", "help", "auth.SentCode"},
		{"Vector<auth.SentCode>", "auth", "[]SentCode"},
		{"Vector<auth.SentCode>", "help", "[]auth.SentCode"},
		{"User", "", "User"},
		{"User", "auth", "tl.User"},
		{"int128", "", "Int128"},
		{"Vector < int >", "", "[]int32"},
	}
	for _, tc := range cases {
		got, err := tr.TypeReference(tc.ref, tc.module)
		require.NoError(t, err, "ref=%q module=%q", tc.ref, tc.module)
		assert.Equal(t, tc.want, got, "ref=%q module=%q", tc.ref, tc.module)
	}
}

func TestTypeReferenceNestsSequencesTwoLevels(t *testing.T) {
	testlog.Start(t)
	r, err := NewTranslator("tl").resolve("Vector<Vector<int>>", "")
	require.NoError(t, err)
	require.Equal(t, refSequence, r.kind)
	require.Equal(t, refSequence, r.elem.kind)
	require.Equal(t, refPrimitive, r.elem.elem.kind)
	assert.Equal(t, "int32", r.elem.elem.goType)
}

func TestTypeReferenceErrors(t *testing.T) {
	testlog.Start(t)
	tr := NewTranslator("tl")
	for _, ref := range []string{
		"",
		"List<int>",
		"auth.Vector<int>",
		"Vector",
		"Vector<>",
		"Vector<int",
		"two words",
		"a.b.c",
		"!X",
	} {
		_, err := tr.TypeReference(ref, "")
		assert.ErrorIs(t, err, ErrTypeReference, "ref=%q", ref)
	}
}

func TestTypeReferenceIsDeterministic(t *testing.T) {
	testlog.Start(t)
	tr := NewTranslator("tl")
	refs := []string{"Vector<auth.SentCode>", "User", "int", "help.Config"}
	first := make([]string, len(refs))
	for i, ref := range refs {
		got, err := tr.TypeReference(ref, "auth")
		require.NoError(t, err)
		first[i] = got
	}
	for i := len(refs) - 1; i >= 0; i-- {
		got, err := tr.TypeReference(refs[i], "auth")
		require.NoError(t, err)
		assert.Equal(t, first[i], got)
	}
}

func TestIdentifier(t *testing.T) {
	testlog.Start(t)
	tr := NewTranslator("tl", "Error")
	cases := []struct {
		id     string
		module string
		want   string
	}{
		{"nonce", "", "nonce"},
		{"type", "", "type_"},
		{"func", "auth", "func_"},
		{"auth.sentCode", "auth", "sentCode"},
		{"auth.sentCode", "", "auth.sentCode"},
		{"auth.sentCode", "help", "auth.sentCode"},
		{"auth.type", "auth", "type_"},
		{"Error", "", "Error_"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tr.Identifier(tc.id, tc.module), "id=%q module=%q", tc.id, tc.module)
	}
	assert.True(t, tr.Reserved("type"))
	assert.False(t, tr.Reserved("nonce"))
}

func TestGoName(t *testing.T) {
	testlog.Start(t)
	cases := map[string]string{
		"server_nonce":    "ServerNonce",
		"type_":           "Type",
		"user_id":         "UserID",
		"api_hash":        "APIHash",
		"resPQ":           "ResPQ",
		"auth.sentCode":   "auth.SentCode",
		"int128":          "Int128",
		"dc_options":      "DCOptions",
		"phone_code_hash": "PhoneCodeHash",
		"_":               "X",
	}
	for in, want := range cases {
		assert.Equal(t, want, GoName(in), "in=%q", in)
	}
	assert.Equal(t, "authSentCode", declName("auth.sentCode"))
}

func TestPackageName(t *testing.T) {
	testlog.Start(t)
	tr := NewTranslator("tl")
	assert.Equal(t, "tl", tr.PackageName(""))
	assert.Equal(t, "auth", tr.PackageName("auth"))
	assert.Equal(t, "wire_", tr.PackageName("wire"))
	assert.Equal(t, "tl_", tr.PackageName("tl"))
	assert.Equal(t, "type_", tr.PackageName("type"))
}

func TestPackageNameEscapesGeneratedLocals(t *testing.T) {
	testlog.Start(t)
	tr := NewTranslator("tl")
	for _, mod := range []string{"m", "v", "d", "err", "e0", "e12"} {
		assert.Equal(t, mod+"_", tr.PackageName(mod), mod)
	}
	for _, mod := range []string{"e", "ex", "e1x", "msg"} {
		assert.Equal(t, mod, tr.PackageName(mod), mod)
	}
}

func TestExportedName(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		module string
		id     string
		want   string
	}{
		{"auth", "sentCode", "AuthSentCode"},
		{"", "resPQ", "ResPQ"},
		{"auth", "help.x", "HelpX"},
		{"auth", "type_", "AuthType"},
		{"upload", "cdn_file", "UploadCdnFile"},
		{"dc", "option", "DCOption"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExportedName(tc.module, tc.id), "module=%q id=%q", tc.module, tc.id)
	}
}
