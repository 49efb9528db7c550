package langdetect

import "testing"

func BenchmarkDetect(b *testing.B) {
	samples := map[string][]byte{
		"go":     []byte("package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"Hello, World!\")\n}"),
		"python": []byte("def hello():\n    print(\"Hello, World!\")\n\nif __name__ == \"__main__\":\n    hello()"),
		"yaml":   []byte("name: docs\non:\n  push:\n    branches: [main]\njobs:\n  build:\n    runs-on: ubuntu-latest\n"),
		"prose":  []byte("This paragraph has no code in it at all, so detection falls through to the classifier."),
	}

	for name, code := range samples {
		b.Run(name, func(b *testing.B) {
			for range b.N {
				Detect(code)
			}
		})
	}
}
