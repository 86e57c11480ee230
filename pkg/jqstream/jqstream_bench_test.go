package jqstream_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shapestone/jqstream/pkg/jqstream"
)

var (
	benchSmall  = `{"name":"Alice","age":30,"active":true,"score":95.5}`
	benchMedium = `{"users":[{"id":1,"name":"Alice","active":true},{"id":2,"name":"Bob","active":false},{"id":3,"name":"Carol","active":true}],"count":3}`
	benchLarge  = buildLargeJSON()
)

func buildLargeJSON() string {
	var sb strings.Builder
	sb.WriteString(`{"items":[`)
	for i := 0; i < 2000; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(`{"id":`)
		sb.WriteString("1")
		sb.WriteString(`,"name":"item","tags":["a","b","c"],"active":true}`)
	}
	sb.WriteString(`]}`)
	return sb.String()
}

func benchmarkJQStreamCompact(b *testing.B, input string) {
	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cc := jqstream.NewCompactChars(jqstream.Parse(strings.NewReader(input)))
		for {
			if _, ok := cc.Next(); !ok {
				if err := cc.Err(); err != nil {
					b.Fatal(err)
				}
				break
			}
		}
	}
}

func benchmarkEncodingJSONCompact(b *testing.B, input string) {
	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v interface{}
		if err := json.Unmarshal([]byte(input), &v); err != nil {
			b.Fatal(err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			b.Fatal(err)
		}
		_ = out
	}
}

func BenchmarkJQStream_Compact_Small(b *testing.B)  { benchmarkJQStreamCompact(b, benchSmall) }
func BenchmarkJQStream_Compact_Medium(b *testing.B) { benchmarkJQStreamCompact(b, benchMedium) }
func BenchmarkJQStream_Compact_Large(b *testing.B)  { benchmarkJQStreamCompact(b, benchLarge) }

func BenchmarkEncodingJSON_Compact_Small(b *testing.B)  { benchmarkEncodingJSONCompact(b, benchSmall) }
func BenchmarkEncodingJSON_Compact_Medium(b *testing.B) { benchmarkEncodingJSONCompact(b, benchMedium) }
func BenchmarkEncodingJSON_Compact_Large(b *testing.B)  { benchmarkEncodingJSONCompact(b, benchLarge) }

// BenchmarkJQStream_AtKeyValues_Large measures the operator-chain path
// (the common case this engine targets) rather than a bare round-trip,
// since encoding/json has no equivalent single-pass streaming filter to
// compare against directly.
func BenchmarkJQStream_AtKeyValues_Large(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchLarge)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := jqstream.NewAtKey(jqstream.Parse(strings.NewReader(benchLarge)), "items")
		values := jqstream.NewValues(jqstream.Sanitize(s))
		cc := jqstream.NewCompactChars(jqstream.Sanitize(values))
		for {
			if _, ok := cc.Next(); !ok {
				if err := cc.Err(); err != nil {
					b.Fatal(err)
				}
				break
			}
		}
	}
}
