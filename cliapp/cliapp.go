// Package cliapp is the thin driver: argument parsing, key-file I/O,
// the challenge-ciphertext guard and console output. It invokes the
// three pure operations in package app and nothing else carries
// business logic.
package cliapp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"

	"github.com/sammyne/koblitz-elgamal/app"
)

var log = logging.MustGetLogger("koblitz-elgamal")

var stderrFormat = logging.MustStringFormatter(
	`%{color}koblitz-elgamal ▶ %{level}: %{message}%{color:reset}`,
)

func init() {
	configureLogging(os.Stderr)
}

// configureLogging points the package logger at w, so Run's diagnostics
// land in whatever stderr the caller supplied instead of always going
// to the real process stderr.
func configureLogging(w io.Writer) {
	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, stderrFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(levelFromEnv(), "")
	logging.SetBackend(leveled)
}

func levelFromEnv() logging.Level {
	switch os.Getenv("KOBLITZ_LOG_LEVEL") {
	case "DEBUG":
		return logging.DEBUG
	case "INFO":
		return logging.INFO
	case "WARNING":
		return logging.WARNING
	case "ERROR":
		return logging.ERROR
	case "CRITICAL":
		return logging.CRITICAL
	default:
		return logging.WARNING
	}
}

// challengeCiphertext is the hard-coded ciphertext the driver refuses
// to decrypt unless the caller supplies an explicit --key override.
const challengeCiphertext = "Zlove;VEHFO"

// ErrCheater is returned when decrypt is asked to operate on the
// challenge ciphertext without a --key override.
var ErrCheater = errors.New("cheater: it is forbidden to decrypt the challenge ciphertext")

// ErrKeyFileMalformed is returned when a --key file contains anything
// beyond a single key line and an optional trailing newline.
var ErrKeyFileMalformed = errors.New("cliapp: key file must contain exactly one line")

type operation int

const (
	opNone operation = iota
	opGenerate
	opEncrypt
	opDecrypt
)

// parseArgs scans argv the way getopt_long resolves a sequence of
// flags: each operation flag (-g/--generate, -e/--encrypt,
// -d/--decrypt) is only honored if no earlier operation flag has
// already claimed the operation, reproducing the "first action wins"
// contract. --key/-k is independent of that contest and always takes
// its most recent value, since the textual interface places no
// ordering requirement on it. -h/--help and -v/--version are
// recognized in the same position-aware pass so that a literal
// "--help" or "--version" supplied as the VALUE of --encrypt/
// --decrypt/--key is never mistaken for the flag itself.
func parseArgs(argv []string) (op operation, value, keyPath string, helpOrVersion bool) {
	for i := 1; i < len(argv); i++ {
		a := argv[i]
		switch {
		case a == "-h" || a == "--help" || a == "-v" || a == "--version":
			helpOrVersion = true
		case a == "-g" || a == "--generate":
			if op == opNone {
				op = opGenerate
			}
		case a == "-e" || a == "--encrypt":
			var v string
			if i+1 < len(argv) {
				v = argv[i+1]
				i++
			}
			if op == opNone {
				op, value = opEncrypt, v
			}
		case strings.HasPrefix(a, "--encrypt="):
			if op == opNone {
				op, value = opEncrypt, strings.TrimPrefix(a, "--encrypt=")
			}
		case a == "-d" || a == "--decrypt":
			var v string
			if i+1 < len(argv) {
				v = argv[i+1]
				i++
			}
			if op == opNone {
				op, value = opDecrypt, v
			}
		case strings.HasPrefix(a, "--decrypt="):
			if op == opNone {
				op, value = opDecrypt, strings.TrimPrefix(a, "--decrypt=")
			}
		case a == "-k" || a == "--key":
			if i+1 < len(argv) {
				keyPath = argv[i+1]
				i++
			}
		case strings.HasPrefix(a, "--key="):
			keyPath = strings.TrimPrefix(a, "--key=")
		}
	}
	return op, value, keyPath, helpOrVersion
}

// readKeyFile enforces the "single line, optional trailing newline,
// nothing else" key-file contract.
func readKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cliapp: reading key file: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	s = strings.TrimSuffix(s, "\r")
	if strings.ContainsAny(s, "\r\n") {
		return "", ErrKeyFileMalformed
	}
	return s, nil
}

// Version is the version string urfave/cli reports for --version/-v.
const Version = "0.1.0"

// describeApp exists purely to give urfave/cli a place to render
// --help/--version text consistent with the flags parseArgs
// recognizes; the actual dispatch below never consults cli.Context
// for operation selection, since urfave/cli's last-flag-wins
// resolution does not match the first-action-wins contract.
func describeApp() *cli.App {
	return &cli.App{
		Name:    "koblitz-elgamal",
		Usage:   "Koblitz-embedded ElGamal encryption over secp256k1",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "generate", Aliases: []string{"g"}, Usage: "print a freshly generated key"},
			&cli.StringFlag{Name: "encrypt", Aliases: []string{"e"}, Usage: "encrypt MESSAGE with the active key"},
			&cli.StringFlag{Name: "decrypt", Aliases: []string{"d"}, Usage: "decrypt MESSAGE with the active key"},
			&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "read the active key from PATH"},
		},
		HideHelpCommand: true,
	}
}

// Run executes the CLI given a full argv (argv[0] is the program
// name, matching os.Args), writing output to stdout and diagnostics
// to stderr. It returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	configureLogging(stderr)

	op, value, keyPath, helpOrVersion := parseArgs(argv)

	if helpOrVersion {
		cliApp := describeApp()
		cliApp.Writer = stdout
		cliApp.ErrWriter = stderr
		if err := cliApp.Run(argv); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}

	switch op {
	case opGenerate:
		out, err := app.Generate(false)
		if err != nil {
			log.Errorf("generate: %v", err)
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, out)
		return 0

	case opEncrypt:
		keyText, err := resolveKey(keyPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		out, err := app.Encrypt(value, keyText)
		if err != nil {
			log.Errorf("encrypt: %v", err)
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, out)
		return 0

	case opDecrypt:
		if value == challengeCiphertext && keyPath == "" {
			fmt.Fprintln(stdout, ErrCheater.Error())
			return 0
		}
		keyText, err := resolveKey(keyPath)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		out, err := app.Decrypt(value, keyText)
		if err != nil {
			log.Errorf("decrypt: %v", err)
			fmt.Fprintln(stderr, err)
			return 1
		}
		fmt.Fprintln(stdout, out)
		return 0

	default:
		fmt.Fprintln(stdout, "there is nothing to do")
		return 0
	}
}

func resolveKey(keyPath string) (string, error) {
	if keyPath == "" {
		return app.Generate(true)
	}
	return readKeyFile(keyPath)
}
