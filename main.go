package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/Korosium/Archive/aes"
	"github.com/Korosium/Archive/base32"
	"github.com/Korosium/Archive/chacha20poly1305"
	"github.com/Korosium/Archive/convert"
	"github.com/Korosium/Archive/digest"
	"github.com/Korosium/Archive/logger"
	"github.com/Korosium/Archive/transposition"
)

func main() {
	// Sub-commands.
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "encrypt":
		runCipher(os.Args[2:], false)
	case "decrypt":
		runCipher(os.Args[2:], true)
	case "hash":
		runHash(os.Args[2:])
	case "encode":
		runCodec(os.Args[2:], false)
	case "decode":
		runCodec(os.Args[2:], true)
	case "transpose":
		runTranspose(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("archive: from-scratch cryptographic primitives")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  archive encrypt [options]     AES mode or ChaCha20-Poly1305 encryption")
	fmt.Println("  archive decrypt [options]     Matching decryption")
	fmt.Println("  archive hash [options]        MD4/MD5/SHA-1/SHA-224/SHA-512-256/SHA3-224")
	fmt.Println("  archive encode [options]      Base32/Base32hex/Base64/hex encoding")
	fmt.Println("  archive decode [options]      Matching decoding")
	fmt.Println("  archive transpose [options]   Classical columnar transposition")
	fmt.Println()
	fmt.Println("Run 'archive <command> -h' for details.")
}

// readInput decodes the -in argument according to -informat.
func readInput(in, format string) ([]byte, error) {
	switch format {
	case "utf8":
		return convert.FromUTF8(in), nil
	case "hex":
		return convert.FromHex(in)
	case "base64":
		return convert.FromBase64(in)
	default:
		return nil, fmt.Errorf("unknown input format %q", format)
	}
}

// writeOutput encodes result bytes according to -outformat.
func writeOutput(out []byte, format string) (string, error) {
	switch format {
	case "utf8":
		return convert.ToUTF8(out), nil
	case "hex":
		return convert.ToHex(out), nil
	case "base64":
		return convert.ToBase64(out), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

func runCipher(args []string, decrypt bool) {
	name := "encrypt"
	if decrypt {
		name = "decrypt"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	mode := fs.String("mode", "cbc", "Mode: ecb, cbc, cfb, ofb, ctr or chacha20poly1305")
	keyHex := fs.String("key", "", "Key as hex (padded/truncated to an AES tier; 32 bytes for the AEAD)")
	ivHex := fs.String("iv", "", "IV or nonce as hex (random if empty on encrypt)")
	aadHex := fs.String("aad", "", "Additional authenticated data as hex (AEAD only)")
	counter := fs.Uint("counter", 0, "Initial counter (ctr only)")
	noPad := fs.Bool("nopad", false, "Disable PKCS#7 padding (ecb/cbc only)")
	in := fs.String("in", "", "Input data")
	informat := fs.String("informat", "utf8", "Input format: utf8, hex or base64")
	outformat := fs.String("outformat", "hex", "Output format: utf8, hex or base64")
	level := fs.String("log", "INFO", "Log level")

	fs.Parse(args)
	logger.Init(*level)
	ctx := logger.WithCommand(context.Background(), name)

	data, err := readInput(*in, *informat)
	if err != nil {
		log.Fatalf("Invalid input: %v", err)
	}
	key, err := convert.FromHex(*keyHex)
	if err != nil {
		log.Fatalf("Invalid key: %v", err)
	}
	var iv []byte
	if *ivHex != "" {
		if iv, err = convert.FromHex(*ivHex); err != nil {
			log.Fatalf("Invalid IV: %v", err)
		}
	}

	var out []byte
	pad := !*noPad
	switch *mode {
	case "ecb":
		if decrypt {
			out, err = aes.DecryptECB(key, data, pad)
		} else {
			out, err = aes.EncryptECB(key, data, pad)
		}
	case "cbc":
		if decrypt {
			out, err = aes.DecryptCBC(key, data, pad)
		} else {
			out, err = aes.EncryptCBC(key, data, iv, pad)
		}
	case "cfb":
		if decrypt {
			out, err = aes.DecryptCFB(key, data)
		} else {
			out, err = aes.EncryptCFB(key, data, iv)
		}
	case "ofb":
		if decrypt {
			out, err = aes.DecryptOFB(key, data)
		} else {
			out, err = aes.EncryptOFB(key, data, iv)
		}
	case "ctr":
		if decrypt {
			out, err = aes.DecryptCTR(key, data, uint32(*counter))
		} else {
			out, err = aes.EncryptCTR(key, data, iv, uint32(*counter))
		}
	case "chacha20poly1305":
		var aad []byte
		if aad, err = convert.FromHex(*aadHex); err != nil {
			log.Fatalf("Invalid AAD: %v", err)
		}
		if iv == nil {
			log.Fatalf("The AEAD requires an explicit -iv nonce of %d hex-encoded bytes", chacha20poly1305.NonceSize)
		}
		if decrypt {
			out, err = chacha20poly1305.Open(key, iv, data, aad)
		} else {
			out, err = chacha20poly1305.Seal(key, iv, data, aad)
		}
	default:
		log.Fatalf("Unknown mode: %s", *mode)
	}
	if err != nil {
		log.Fatalf("%s failed: %v", name, err)
	}

	logger.LogAttrs(ctx, slog.LevelDebug, "cipher operation complete",
		slog.String("mode", *mode), slog.Int("input_bytes", len(data)), slog.Int("output_bytes", len(out)))

	encoded, err := writeOutput(out, *outformat)
	if err != nil {
		log.Fatalf("Invalid output format: %v", err)
	}
	fmt.Println(encoded)
}

func runHash(args []string) {
	fs := flag.NewFlagSet("hash", flag.ExitOnError)
	alg := fs.String("alg", "sha224", "Algorithm: md4, md5, sha1, sha224, sha512-256 or sha3-224")
	in := fs.String("in", "", "Input data")
	informat := fs.String("informat", "utf8", "Input format: utf8, hex or base64")
	level := fs.String("log", "INFO", "Log level")

	fs.Parse(args)
	logger.Init(*level)
	ctx := logger.WithCommand(context.Background(), "hash")

	data, err := readInput(*in, *informat)
	if err != nil {
		log.Fatalf("Invalid input: %v", err)
	}

	fns := map[string]func([]byte) []byte{
		"md4":        digest.MD4,
		"md5":        digest.MD5,
		"sha1":       digest.SHA1,
		"sha224":     digest.SHA224,
		"sha512-256": digest.SHA512_256,
		"sha3-224":   digest.SHA3_224,
	}
	fn, ok := fns[*alg]
	if !ok {
		log.Fatalf("Unknown algorithm: %s", *alg)
	}

	sum := fn(data)
	logger.LogAttrs(ctx, slog.LevelDebug, "digest computed",
		slog.String("alg", *alg), slog.Int("input_bytes", len(data)))
	fmt.Println(convert.ToHex(sum))
}

func runCodec(args []string, decode bool) {
	name := "encode"
	if decode {
		name = "decode"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	codec := fs.String("codec", "base32", "Codec: base32, base32hex, base64 or hex")
	noPad := fs.Bool("nopad", false, "Disable '=' padding (base32 variants only)")
	in := fs.String("in", "", "Input data")
	informat := fs.String("informat", "utf8", "Input format for encode: utf8, hex or base64")
	level := fs.String("log", "INFO", "Log level")

	fs.Parse(args)
	logger.Init(*level)

	enc := map[string]*base32.Encoding{
		"base32":    base32.Std,
		"base32hex": base32.Hex,
	}[*codec]
	if enc != nil {
		enc = enc.WithPadding(!*noPad)
	}

	if decode {
		var out []byte
		var err error
		switch *codec {
		case "base32", "base32hex":
			out, err = enc.Decode(*in)
		case "base64":
			out, err = convert.FromBase64(*in)
		case "hex":
			out, err = convert.FromHex(*in)
		default:
			log.Fatalf("Unknown codec: %s", *codec)
		}
		if err != nil {
			log.Fatalf("Decode failed: %v", err)
		}
		fmt.Println(convert.ToHex(out))
		return
	}

	data, err := readInput(*in, *informat)
	if err != nil {
		log.Fatalf("Invalid input: %v", err)
	}
	switch *codec {
	case "base32", "base32hex":
		fmt.Println(enc.Encode(data))
	case "base64":
		fmt.Println(convert.ToBase64(data))
	case "hex":
		fmt.Println(convert.ToHex(data))
	default:
		log.Fatalf("Unknown codec: %s", *codec)
	}
}

func runTranspose(args []string) {
	fs := flag.NewFlagSet("transpose", flag.ExitOnError)
	key := fs.String("key", "", "Transposition key word")
	decrypt := fs.Bool("decrypt", false, "Decrypt instead of encrypt")
	in := fs.String("in", "", "Input data")
	informat := fs.String("informat", "utf8", "Input format: utf8, hex or base64")
	outformat := fs.String("outformat", "utf8", "Output format: utf8, hex or base64")

	fs.Parse(args)
	logger.Init("INFO")

	data, err := readInput(*in, *informat)
	if err != nil {
		log.Fatalf("Invalid input: %v", err)
	}

	var out []byte
	if *decrypt {
		out = transposition.Decrypt(*key, data)
	} else {
		out = transposition.Encrypt(*key, data)
	}

	encoded, err := writeOutput(out, *outformat)
	if err != nil {
		log.Fatalf("Invalid output format: %v", err)
	}
	fmt.Println(encoded)
}
