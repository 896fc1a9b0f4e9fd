package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hasbyte1/go-prelude/algebra"
)

type user struct {
	Name   string
	Tags   []string
	secret string
}

func TestGet(t *testing.T) {
	l := algebra.NewList("a", "b")
	v, ok := algebra.Get(l, 1)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	v, ok = algebra.Get(l, "0")
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	_, ok = algebra.Get(l, 5)
	assert.False(t, ok)

	d := algebra.NewDict(entry("1", "one"), entry(2, "two"))
	v, _ = algebra.Get(d, 1)
	assert.Equal(t, "one", v)
	v, _ = algebra.Get(d, "2")
	assert.Equal(t, "two", v)

	v, _ = algebra.Get(algebra.NewText("xyz"), 2)
	assert.Equal(t, "z", v)

	_, ok = algebra.Get(algebra.Empty{}, 0)
	assert.False(t, ok)
}

func TestGetStructField(t *testing.T) {
	u := algebra.NewIdentity(user{Name: "ada", secret: "x"})
	v, ok := algebra.Get(u, "Name")
	assert.True(t, ok)
	assert.Equal(t, "ada", v)

	_, ok = algebra.Get(u, "secret")
	assert.False(t, ok, "unexported fields are not visible")

	v, ok = algebra.Get(algebra.NewIdentity(&user{Name: "bob"}), "Name")
	assert.True(t, ok)
	assert.Equal(t, "bob", v)
}

func TestPath(t *testing.T) {
	w := algebra.Resolve(map[string]any{
		"user": map[string]any{
			"tags":    []any{"admin", "ops"},
			"profile": user{Name: "ada", Tags: []string{"x"}},
		},
	})

	v, ok := algebra.Path(w, "user.tags.1")
	assert.True(t, ok)
	assert.Equal(t, "ops", v)

	v, ok = algebra.Path(w, "user.profile.Tags.0")
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = algebra.Path(w, "user.missing")
	assert.False(t, ok)

	_, ok = algebra.Path(w, "user.tags.1.deeper")
	assert.False(t, ok)
}
