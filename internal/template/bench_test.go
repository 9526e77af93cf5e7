package template_test

import (
	"bytes"
	"io"
	"testing"

	"stencil/internal/template"
)

// benchInput mixes long plain runs with all three tag kinds and multi-line
// bodies, roughly the shape of a real page template.
func benchInput() []byte {
	chunk := []byte(`<section>
  {% for item in items %}
  <h1>{{ item.title }}</h1>
  {# rendered by stencil #}
  <p>some longer literal text that the scanner should skip over quickly,
including a lone { brace and a stray % sign that are not delimiters.</p>
  {% endfor %}
</section>
`)
	return bytes.Repeat(chunk, 512)
}

func BenchmarkParse(b *testing.B) {
	input := benchInput()
	b.SetBytes(int64(len(input)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := template.New(input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInstantiate(b *testing.B) {
	tmpl, err := template.New(benchInput())
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(benchInput())))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := tmpl.Instantiate(io.Discard); err != nil {
			b.Fatal(err)
		}
	}
}
