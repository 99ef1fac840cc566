// Package selftest exercises the aes128 cipher against published vectors and
// against crypto/aes from several goroutines at once.
package selftest

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/xmdhs/go-aes128/aes128"
	"github.com/xmdhs/go-aes128/logger"

	"golang.org/x/sys/cpu"
)

// Vector is a single known-answer test, all fields hex encoded.
type Vector struct {
	Name       string
	Key        string
	Plaintext  string
	Ciphertext string
}

// KnownVectors are checked before any random blocks.
var KnownVectors = []Vector{
	{
		Name:       "kung-fu",
		Key:        hex.EncodeToString([]byte("Thats my Kung Fu")),
		Plaintext:  hex.EncodeToString([]byte("Two One Nine Two")),
		Ciphertext: "29c3505f571420f6402299b31a02d73a",
	},
	{
		Name:       "fips197-b",
		Key:        "2b7e151628aed2a6abf7158809cf4f3c",
		Plaintext:  "3243f6a8885a308d313198a2e0370734",
		Ciphertext: "3925841d02dc09fbdc118597196a0b32",
	},
	{
		Name:       "fips197-c1",
		Key:        "000102030405060708090a0b0c0d0e0f",
		Plaintext:  "00112233445566778899aabbccddeeff",
		Ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
	},
}

// Config controls a self-test run.
type Config struct {
	Workers int
	Blocks  int // random blocks per worker
}

func DefaultConfig() *Config {
	return &Config{
		Workers: 4,
		Blocks:  256,
	}
}

// Report summarizes a successful run.
type Report struct {
	Vectors     int
	Blocks      int
	Workers     int
	HardwareAES bool // whether the crypto/aes reference ran on AES instructions
	Elapsed     time.Duration
}

// HardwareAES reports whether the CPU exposes AES instructions that
// crypto/aes will use.
func HardwareAES() bool {
	return cpu.X86.HasAES || cpu.ARM64.HasAES || cpu.S390X.HasAES
}

// CheckVector runs one known-answer test in both directions.
func CheckVector(v Vector) error {
	key, err := hex.DecodeString(v.Key)
	if err != nil {
		return fmt.Errorf("vector %s: key: %w", v.Name, err)
	}
	pt, err := hex.DecodeString(v.Plaintext)
	if err != nil {
		return fmt.Errorf("vector %s: plaintext: %w", v.Name, err)
	}
	want, err := hex.DecodeString(v.Ciphertext)
	if err != nil {
		return fmt.Errorf("vector %s: ciphertext: %w", v.Name, err)
	}

	ct, err := aes128.EncryptBlock(pt, key)
	if err != nil {
		return fmt.Errorf("vector %s: %w", v.Name, err)
	}
	if !bytes.Equal(ct, want) {
		return fmt.Errorf("vector %s: encrypt got %x want %x", v.Name, ct, want)
	}
	back, err := aes128.DecryptBlock(ct, key)
	if err != nil {
		return fmt.Errorf("vector %s: %w", v.Name, err)
	}
	if !bytes.Equal(back, pt) {
		return fmt.Errorf("vector %s: decrypt got %x want %x", v.Name, back, pt)
	}
	return nil
}

// Run checks the known vectors and then the configured number of random
// blocks per worker. It returns the first failure.
func Run(ctx context.Context, config *Config) (*Report, error) {
	if config.Workers <= 0 {
		return nil, fmt.Errorf("invalid worker count %d", config.Workers)
	}
	if config.Blocks < 0 {
		return nil, fmt.Errorf("invalid block count %d", config.Blocks)
	}

	start := time.Now()
	hw := HardwareAES()
	logger.LogAttrs(ctx, slog.LevelInfo, "Self-test started",
		slog.Int("workers", config.Workers), slog.Int("blocks", config.Blocks), slog.Bool("hardware_aes", hw))

	for _, v := range KnownVectors {
		if err := CheckVector(v); err != nil {
			return nil, err
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "Vector passed", slog.String("vector", v.Name))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	for id := 0; id < config.Workers; id++ {
		id := id
		wg.Add(1)
		go func() {
			defer wg.Done()
			wctx := logger.WithWorkerID(ctx, id)
			if err := runWorker(wctx, config.Blocks); err != nil {
				errOnce.Do(func() {
					firstErr = err
					cancel()
				})
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	report := &Report{
		Vectors:     len(KnownVectors),
		Blocks:      config.Workers * config.Blocks,
		Workers:     config.Workers,
		HardwareAES: hw,
		Elapsed:     time.Since(start),
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "Self-test passed",
		slog.Int("vectors", report.Vectors), slog.Int("blocks", report.Blocks), slog.Duration("elapsed", report.Elapsed))
	return report, nil
}

func runWorker(ctx context.Context, blocks int) error {
	var buf [aes128.KeySize + aes128.BlockSize]byte
	ref := make([]byte, aes128.BlockSize)

	for i := 0; i < blocks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := rand.Read(buf[:]); err != nil {
			return fmt.Errorf("read random input: %w", err)
		}
		raw := [aes128.KeySize]byte(buf[:aes128.KeySize])
		pt := aes128.Block(buf[aes128.KeySize:])

		refBlock, err := aes.NewCipher(raw[:])
		if err != nil {
			return fmt.Errorf("reference cipher: %w", err)
		}
		refBlock.Encrypt(ref, pt[:])

		key := aes128.KeyFromBytes(raw)
		ct := aes128.Encrypt(pt, key)
		if !bytes.Equal(ct[:], ref) {
			logger.LogAttrs(ctx, slog.LevelError, "Ciphertext mismatch",
				slog.Int("block", i), slog.String("key", hex.EncodeToString(raw[:])), slog.String("plaintext", hex.EncodeToString(pt[:])))
			return fmt.Errorf("block %d: encrypt got %x want %x", i, ct, ref)
		}
		if back := aes128.Decrypt(ct, key); back != pt {
			logger.LogAttrs(ctx, slog.LevelError, "Round trip mismatch", slog.Int("block", i))
			return fmt.Errorf("block %d: decrypt got %x want %x", i, back, pt)
		}
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "Worker finished", slog.Int("blocks", blocks))
	return nil
}
