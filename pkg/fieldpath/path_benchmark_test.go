package fieldpath_test

import (
	"fmt"
	"testing"

	"github.com/JulesGuesnon/garde/pkg/fieldpath"
)

func buildPath(depth int) fieldpath.Path {
	p := fieldpath.New(fieldpath.Key("root"))
	for i := 1; i < depth; i++ {
		if i%3 == 0 {
			p = p.Join(fieldpath.Index(i))
		} else {
			p = p.Join(fieldpath.Key(fmt.Sprintf("field%d", i)))
		}
	}
	return p
}

func BenchmarkPath_Join(b *testing.B) {
	for _, depth := range []int{1, 8, 64} {
		b.Run(fmt.Sprintf("depth%d", depth), func(b *testing.B) {
			base := buildPath(depth)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = base.Join(fieldpath.Key("leaf"))
			}
		})
	}
}

func BenchmarkPath_String(b *testing.B) {
	for _, depth := range []int{3, 8, 32} {
		b.Run(fmt.Sprintf("depth%d", depth), func(b *testing.B) {
			p := buildPath(depth)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = p.String()
			}
		})
	}
}

func BenchmarkPattern_Matches(b *testing.B) {
	pattern := fieldpath.MustParsePattern("root.field1.field2")
	for _, depth := range []int{3, 8, 32} {
		b.Run(fmt.Sprintf("depth%d", depth), func(b *testing.B) {
			p := buildPath(depth)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = pattern.Matches(p)
			}
		})
	}
}
