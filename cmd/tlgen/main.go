// Command tlgen compiles TL JSON schemas into Go packages for the wire codec.
package main

import "github.com/danmuck/tlwire/internal/logging"

func main() {
	logging.ConfigureRuntime()
	Execute()
}
