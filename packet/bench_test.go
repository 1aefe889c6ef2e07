package packet

import (
	"math/rand"
	"testing"

	"github.com/forestrie/go-advent2021/bitstream"
)

func benchmarkMessage(b *testing.B) string {
	rng := rand.New(rand.NewSource(16))
	hex, err := EncodeHex(randomPacket(rng, 4))
	if err != nil {
		b.Fatal(err)
	}
	return hex
}

func BenchmarkDecode(b *testing.B) {
	hex := benchmarkMessage(b)
	b.SetBytes(int64(len(hex)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(hex); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse(b *testing.B) {
	hex := benchmarkMessage(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, err := bitstream.FromHex(hex)
		if err != nil {
			b.Fatal(err)
		}
		if _, _, err := Parse(s); err != nil {
			b.Fatal(err)
		}
	}
}
