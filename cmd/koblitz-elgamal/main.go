// Command koblitz-elgamal is the CLI entrypoint: key generation,
// encryption and decryption of text strings using Koblitz-embedded
// ElGamal over secp256k1.
package main

import (
	"os"

	"github.com/sammyne/koblitz-elgamal/cliapp"
)

func main() {
	os.Exit(cliapp.Run(os.Args, os.Stdout, os.Stderr))
}
