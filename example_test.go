//go:build !xorerrors_nobase64 && !xorerrors_nohex && !xorerrors_nolz4 && !xorerrors_nobilly

package xorerrors_test

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/go-git/go-billy/v5/memfs"

	xorerrors "github.com/xorapps/XOR-Errors"
)

func ExampleFrom() {
	input := []byte("QUJD,EFG")
	_, err := base64.StdEncoding.DecodeString(string(input))

	fmt.Println(xorerrors.From(err, input))
	// Output: [BASE64_DECODE_FAILED] base64: invalid byte 0x2c at offset 4
}

func ExampleFromIO() {
	fsys := memfs.New()
	_, err := fsys.Open("input.xor")

	fmt.Println(xorerrors.FromIO(err))
	// Output: [IO_FAILURE] i/o failure: entity not found
}

func ExampleAsHex() {
	input := []byte("0g")
	_, err := hex.DecodeString(string(input))

	if failure, ok := xorerrors.AsHex(err, input); ok {
		fmt.Printf("%c at %d\n", failure.Err.Char, failure.Err.Index)
	}
	// Output: g at 1
}

func ExampleCompare() {
	errs := []xorerrors.Error{
		xorerrors.NewSizeLimitExceeded(100, 200),
		xorerrors.NewIO(xorerrors.IOTimedOut),
		xorerrors.NewSizeLimitExceeded(100, 150),
	}
	slices.SortFunc(errs, xorerrors.Compare)

	for _, err := range errs {
		fmt.Println(err)
	}
	// Output:
	// [IO_FAILURE] i/o failure: timed out
	// [SIZE_LIMIT_EXCEEDED] size limit exceeded: 150 bytes encountered, 100 allowed
	// [SIZE_LIMIT_EXCEEDED] size limit exceeded: 200 bytes encountered, 100 allowed
}

func ExampleCheckSize() {
	fmt.Println(xorerrors.CheckSize(1024, 512) == nil)
	fmt.Println(xorerrors.CheckSize(1024, 2048))
	// Output:
	// true
	// [SIZE_LIMIT_EXCEEDED] size limit exceeded: 2048 bytes encountered, 1024 allowed
}

func ExampleCheckEncode() {
	fmt.Println(xorerrors.CheckEncode("base64", xorerrors.ShapeText))
	fmt.Println(xorerrors.CheckEncode("lz4", xorerrors.ShapeText))
	// Output:
	// <nil>
	// [UNSUPPORTED_STRING_ENCODING] lz4 does not encode to a string
}

func ExampleIsRetryable() {
	fmt.Println(xorerrors.IsRetryable(xorerrors.NewIO(xorerrors.IOTimedOut)))
	fmt.Println(xorerrors.IsRetryable(xorerrors.NewInvalidPath("/x")))
	// Output:
	// true
	// false
}

func ExampleToJSON() {
	data, _ := json.Marshal(xorerrors.ToJSON(xorerrors.NewSizeLimitExceeded(100, 150)))
	fmt.Println(string(data))
	// Output: {"code":"SIZE_LIMIT_EXCEEDED","message":"size limit exceeded: 150 bytes encountered, 100 allowed","classification":"PERMANENT","fields":{"allowed":100,"encountered":150}}
}

func ExampleLogAttr() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))

	input := []byte("0g")
	_, err := hex.DecodeString(string(input))
	logger.Error("decode failed", xorerrors.LogAttr(xorerrors.From(err, input)))
	// Output: {"level":"ERROR","msg":"decode failed","error":{"code":"HEX_DECODE_FAILED","classification":"PERMANENT","char":"g","index":1,"reason":"invalid_character"}}
}
