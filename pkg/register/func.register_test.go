package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testKey struct{}

func TestRegisterFunc(t *testing.T) {
	var called []string
	RegisterFunc[*[]string](testKey{}, func(s *[]string) {
		*s = append(*s, "first")
	})
	RegisterFunc[*[]string](testKey{}, func(s *[]string) {
		*s = append(*s, "second")
	})
	RegisterFunc[int](testKey{}, func(int) {
		t.Fatal("handler of another type must not resolve")
	})

	for _, h := range ResolveFuncHandlers[*[]string](testKey{}) {
		h(&called)
	}
	assert.Equal(t, []string{"first", "second"}, called)
}
