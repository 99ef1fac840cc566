package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/xmdhs/go-aes128/aes128"
	"github.com/xmdhs/go-aes128/logger"
	"github.com/xmdhs/go-aes128/selftest"
)

// demoMessage is the plaintext used by the demo subcommand.
const demoMessage = "Two One Nine Two"

func main() {
	// Sub-commands.
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "encrypt":
		err = runCrypt(os.Stdout, "encrypt", os.Args[2:], aes128.EncryptBlock)
	case "decrypt":
		err = runCrypt(os.Stdout, "decrypt", os.Args[2:], aes128.DecryptBlock)
	case "demo":
		err = runDemo(os.Stdout, os.Args[2:])
	case "selftest":
		err = runSelfTest(os.Stdout, os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func printUsage() {
	fmt.Println("go-aes128: AES-128 single-block cipher")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  go-aes128 encrypt -key HEX -in HEX    Encrypt one block")
	fmt.Println("  go-aes128 decrypt -key HEX -in HEX    Decrypt one block")
	fmt.Println("  go-aes128 demo                        Encrypt a sample message under a random key")
	fmt.Println("  go-aes128 selftest [options]          Check against known vectors and crypto/aes")
	fmt.Println()
	fmt.Println("Run 'go-aes128 <command> -h' for details.")
}

// decodeHex parses a hex argument, tolerating spaces and a 0x prefix.
func decodeHex(name, s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.ReplaceAll(s, " ", ""), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return b, nil
}

func runCrypt(w io.Writer, name string, args []string, fn func(src, key []byte) ([]byte, error)) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	keyHex := fs.String("key", "", "Key (32 hex chars)")
	inHex := fs.String("in", "", "Input block (32 hex chars)")
	level := fs.String("log", "ERROR", "Log level (DEBUG, INFO, WARN, ERROR)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger.Init(*level)

	key, err := decodeHex("key", *keyHex)
	if err != nil {
		return err
	}
	in, err := decodeHex("input", *inHex)
	if err != nil {
		return err
	}

	out, err := fn(in, key)
	clear(key)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, hex.EncodeToString(out))
	return nil
}

func runDemo(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	level := fs.String("log", "ERROR", "Log level (DEBUG, INFO, WARN, ERROR)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger.Init(*level)

	var raw [aes128.KeySize]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	key := aes128.KeyFromBytes(raw)
	clear(raw[:])

	msg := aes128.Block([]byte(demoMessage))
	ct := aes128.Encrypt(msg, key)
	pt := aes128.Decrypt(ct, key)

	fmt.Fprintf(w, "Our message (in hex) is\n%s\n\n", spacedHex(msg[:]))
	fmt.Fprintf(w, "Our ciphertext (in hex) is\n%s\n\n", spacedHex(ct[:]))
	fmt.Fprintf(w, "Our decrypted message (in hex) is\n%s\n", spacedHex(pt[:]))
	return nil
}

func spacedHex(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02x", v)
	}
	return strings.Join(parts, " ")
}

func runSelfTest(w io.Writer, args []string) error {
	config := selftest.DefaultConfig()

	fs := flag.NewFlagSet("selftest", flag.ContinueOnError)
	workers := fs.Int("workers", config.Workers, "Concurrent workers")
	blocks := fs.Int("blocks", config.Blocks, "Random blocks per worker")
	level := fs.String("log", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger.Init(*level)

	config.Workers = *workers
	config.Blocks = *blocks

	report, err := selftest.Run(context.Background(), config)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "ok: %d vectors, %d random blocks across %d workers (hardware AES reference: %v)\n",
		report.Vectors, report.Blocks, report.Workers, report.HardwareAES)
	return nil
}
