package database

import (
	"runtime"

	"github.com/expki/go-dataminer/config"
	_ "github.com/expki/go-dataminer/env"
	"github.com/klauspost/compress/zstd"
)

// pageEncoder trades speed for ratio; pages are written once and read on every rerun.
var pageEncoder *zstd.Encoder = func() *zstd.Encoder {
	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(runtime.NumCPU()),
	)
	if err != nil {
		panic(err)
	}
	return encoder
}()

// pageDecoder refuses bodies larger than the fetcher would ever have accepted.
var pageDecoder *zstd.Decoder = func() *zstd.Decoder {
	decoder, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(runtime.NumCPU()),
		zstd.WithDecoderMaxMemory(uint64(config.HTTP_MAX_BODY_BYTES)),
	)
	if err != nil {
		panic(err)
	}
	return decoder
}()

func compressPage(body []byte) []byte {
	return pageEncoder.EncodeAll(body, make([]byte, 0, len(body)/4))
}

func decompressPage(packed []byte) ([]byte, error) {
	return pageDecoder.DecodeAll(packed, nil)
}
