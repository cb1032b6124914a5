// Package wire owns the TL binary wire format.
//
// Ownership boundary:
// - little-endian fixed-width primitives
// - padded string and counted sequence primitives
// - bare (record) and boxed (discriminated) layout through Visitor
// - discriminator tables used to decode boxed values
//
// Generated types implement Marshaler and Unmarshaler; the encoder and decoder
// never inspect values by reflection beyond the nil check on variants.
package wire
