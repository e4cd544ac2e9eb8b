package cache_test

import (
	"testing"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lru/core/cache"
)

type profile struct {
	Name  string
	Tags  []string
	Attrs map[string]string
}

func newProfile() profile {
	return profile{
		Name:  "jane",
		Tags:  []string{"admin"},
		Attrs: map[string]string{"team": "core"},
	}
}

func TestClone_Disabled(t *testing.T) {
	t.Parallel()

	c, err := cache.New[string, profile]()
	require.NoError(t, err)

	p := newProfile()
	c.Set("p", p)
	p.Tags[0] = "mutated"

	got, ok := c.Get("p")
	require.True(t, ok)
	assert.Equal(t, "mutated", got.Tags[0], "values share backing storage without cloning")
}

func TestClone_Enabled(t *testing.T) {
	t.Parallel()

	c, err := cache.New[string, profile](cache.WithClone())
	require.NoError(t, err)

	p := newProfile()
	c.Set("p", p)

	t.Run("stored value is a copy", func(t *testing.T) {
		p.Tags[0] = "mutated"
		p.Attrs["team"] = "other"

		got, ok := c.Peek("p")
		require.True(t, ok)
		assert.Equal(t, newProfile(), got)
	})

	t.Run("returned value is a copy", func(t *testing.T) {
		got, ok := c.Get("p")
		require.True(t, ok)
		got.Tags[0] = "changed"

		again, ok := c.Get("p")
		require.True(t, ok)
		assert.Equal(t, "admin", again.Tags[0])
	})

	t.Run("iteration yields copies", func(t *testing.T) {
		for _, v := range c.All() {
			v.Attrs["team"] = "changed"
		}
		got, _ := c.Peek("p")
		assert.Equal(t, "core", got.Attrs["team"])
	})
}

func TestClone_PointerValues(t *testing.T) {
	t.Parallel()

	c, err := cache.New[string, *profile](cache.WithClone())
	require.NoError(t, err)

	p := newProfile()
	c.Set("p", &p)

	got, ok := c.Get("p")
	require.True(t, ok)
	assert.NotSame(t, &p, got)
	assert.Equal(t, p, *got)
}

type account struct {
	Name  string
	pin   int
	notes []string
}

func TestClone_UnexportedFields(t *testing.T) {
	t.Parallel()

	c, err := cache.New[string, *account](cache.WithClone())
	require.NoError(t, err)

	src := &account{Name: "x", pin: 42, notes: []string{"first"}}
	c.Set("a", src)

	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, src, got)
	assert.NotSame(t, src, got)
	assert.Equal(t, 42, got.pin)

	got.notes[0] = "changed"
	again, ok := c.Peek("a")
	require.True(t, ok)
	assert.Equal(t, []string{"first"}, again.notes)
}

func TestClone_CustomFunc(t *testing.T) {
	t.Parallel()

	c, err := cache.New[string, []int]()
	require.NoError(t, err)

	calls := 0
	c.SetCloneFunc(func(v []int) []int {
		calls++
		return append([]int(nil), v...)
	})

	src := []int{1, 2, 3}
	c.Set("s", src)
	assert.Equal(t, 1, calls)

	src[0] = 100
	got, ok := c.Peek("s")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, 2, calls)

	c.SetCloneFunc(nil)
	c.Set("raw", src)
	got, _ = c.Peek("raw")
	src[1] = 200
	assert.Equal(t, 200, got[1])
}

func TestClone_PerEntryOverride(t *testing.T) {
	t.Parallel()

	t.Run("disable for one entry", func(t *testing.T) {
		c, err := cache.New[string, []int](cache.WithClone())
		require.NoError(t, err)

		src := []int{1}
		_, err = c.SetWithOptions("s", src, cache.EntryOptions[string, []int]{Clone: fn.Some(false)})
		require.NoError(t, err)

		src[0] = 9
		got, _ := c.Peek("s")
		assert.Equal(t, []int{9}, got)
	})

	t.Run("enable for one entry", func(t *testing.T) {
		c, err := cache.New[string, []int]()
		require.NoError(t, err)

		src := []int{1}
		_, err = c.SetWithOptions("s", src, cache.EntryOptions[string, []int]{Clone: fn.Some(true)})
		require.NoError(t, err)

		src[0] = 9
		got, _ := c.Peek("s")
		assert.Equal(t, []int{1}, got)
	})

	t.Run("custom func for one entry", func(t *testing.T) {
		c, err := cache.New[string, []int]()
		require.NoError(t, err)

		_, err = c.SetWithOptions("s", []int{1, 2}, cache.EntryOptions[string, []int]{
			CloneFunc: func(v []int) []int { return append([]int{0}, v...) },
		})
		require.NoError(t, err)

		got, _ := c.Peek("s")
		assert.Equal(t, []int{0, 0, 1, 2}, got)
	})
}

func TestDeepCopy(t *testing.T) {
	t.Parallel()

	var nilAny any
	assert.Nil(t, cache.DeepCopy(nilAny))
	assert.Equal(t, 5, cache.DeepCopy(5))

	p := newProfile()
	cp := cache.DeepCopy(p)
	cp.Tags[0] = "x"
	assert.Equal(t, "admin", p.Tags[0])
}
