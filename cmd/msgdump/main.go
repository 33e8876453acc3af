// msgdump decodes and verifies a fixed-layout binary message against a TOML
// layout descriptor.
//
// Usage:
//
//	msgdump -layout point3d.toml -hex 1540a0000040c0000041200000d5
//	msgdump -layout point3d.toml -in message.hex
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

func main() {
	layoutPath := flag.String("layout", "", "path to a TOML layout descriptor")
	hexArg := flag.String("hex", "", "hex-encoded message bytes")
	inPath := flag.String("in", "", "file containing hex-encoded message bytes")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if *layoutPath == "" {
		log.Fatal().Msg("missing -layout")
	}
	d, err := loadLayout(*layoutPath)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid layout")
	}
	log.Info().Str("layout", d.Name).Uint8("type", d.Type).Int("size", d.Size).
		Msg("layout loaded")

	raw, err := readMessage(*hexArg, *inPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read message bytes")
	}

	msg := d.Message()
	if !msg.Populate(raw) {
		log.Fatal().
			Int("want_size", msg.Size()).Int("got_size", len(raw)).
			Uint8("want_type", msg.Type()).
			Msg("populate rejected: type or size mismatch")
	}

	for _, f := range d.Fields {
		v, err := f.Decode(msg.Bytes())
		if err != nil {
			log.Fatal().Err(err).Str("field", f.Name).Msg("decode failed")
		}
		fmt.Printf("%-16s %-8s @%-4d %v\n", f.Name, f.Kind, f.Offset, v)
	}
	if d.Blob != nil {
		region := msg.Bytes()[d.Blob.Offset : d.Blob.Offset+d.Blob.Size]
		fmt.Printf("%-16s %-8s @%-4d %s\n", d.Blob.Name, "blob", d.Blob.Offset,
			hex.EncodeToString(region))
	}

	if d.Checksum != nil {
		res, err := d.VerifyChecksum(msg.Bytes())
		if err != nil {
			log.Fatal().Err(err).Msg("checksum verification failed to run")
		}
		if !res.OK() {
			log.Error().
				Str("algorithm", d.Checksum.Algorithm).
				Uint64("stored", res.Stored).
				Uint64("computed", res.Computed).
				Msg("checksum mismatch")
			os.Exit(1)
		}
		log.Info().Str("algorithm", d.Checksum.Algorithm).
			Uint64("value", res.Stored).Msg("checksum ok")
	}
}

// readMessage decodes the message bytes from the -hex argument or a file,
// tolerating whitespace in the hex text.
func readMessage(hexArg, inPath string) ([]byte, error) {
	s := hexArg
	if s == "" {
		if inPath == "" {
			return nil, fmt.Errorf("need -hex or -in")
		}
		b, err := os.ReadFile(inPath)
		if err != nil {
			return nil, err
		}
		s = string(b)
	}
	s = strings.Join(strings.Fields(s), "")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return raw, nil
}
