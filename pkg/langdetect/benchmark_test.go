package langdetect

import (
	"testing"
)

func BenchmarkDetectByExtension(b *testing.B) {
	code := []byte("return {}")
	b.ResetTimer()
	for range b.N {
		Detect("init.lua", code)
	}
}

func BenchmarkDetectByPattern(b *testing.B) {
	code := []byte(`local M = {}

function M.greet(name)
  if name then
    print("hello " .. name)
  end
end

return M`)
	b.ResetTimer()
	for range b.N {
		Detect("", code)
	}
}

func BenchmarkDetectEmpty(b *testing.B) {
	code := []byte("")
	b.ResetTimer()
	for range b.N {
		Detect("", code)
	}
}

func BenchmarkDetectSmall(b *testing.B) {
	code := []byte("hello")
	b.ResetTimer()
	for range b.N {
		Detect("", code)
	}
}
