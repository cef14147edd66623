package registry_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/uptrace/ratio"
	"github.com/uptrace/ratio/registry"
)

const config = `
ratios:
  hidpi: 2/1
  ntsc: {num: 30000, div: 1001}
  half: 1
`

func TestSetGet(t *testing.T) {
	reg := registry.New()

	require.NoError(t, reg.Set("half", ratio.Ratio{Num: 1, Div: 2}))
	v, ok := reg.Get("half")
	require.True(t, ok)
	require.Equal(t, ratio.Ratio{Num: 1, Div: 2}, v)

	_, ok = reg.Get("missing")
	require.False(t, ok)

	for _, name := range []string{"", "3/4", "1x", "a b"} {
		require.ErrorIs(t, reg.Set(name, ratio.Unit), registry.ErrInvalidName, name)
	}

	reg.Delete("half")
	require.Equal(t, 0, reg.Len())
}

func TestResolve(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Set("ntsc", ratio.Ratio{Num: 30000, Div: 1001}))

	v, err := reg.Resolve("ntsc")
	require.NoError(t, err)
	require.Equal(t, ratio.Ratio{Num: 30000, Div: 1001}, v)

	v, err = reg.Resolve("3/4")
	require.NoError(t, err)
	require.Equal(t, ratio.Ratio{Num: 3, Div: 4}, v)

	_, err = reg.Resolve("pal")
	require.ErrorIs(t, err, ratio.ErrSyntax)
}

func TestLoad(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	reg := registry.New(registry.WithLogger(&logger))

	n, err := reg.Load(context.Background(), strings.NewReader(config))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []string{"half", "hidpi", "ntsc"}, reg.Names())

	v, _ := reg.Get("half")
	require.Equal(t, ratio.Ratio{Num: 1, Div: 1}, v)
	v, _ = reg.Get("ntsc")
	require.Equal(t, ratio.Ratio{Num: 30000, Div: 1001}, v)

	require.Contains(t, buf.String(), `"name":"ntsc"`)
	require.Contains(t, buf.String(), `"ratio":"30000/1001"`)

	t.Run("empty document", func(t *testing.T) {
		n, err := registry.New().Load(context.Background(), strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, 0, n)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, doc := range []string{
			"ratios:\n  bad: x/y\n",
			"ratios:\n  \"3/4\": 1/2\n",
			"ratio:\n  a: 1/2\n",
		} {
			reg := registry.New()
			_, err := reg.Load(context.Background(), strings.NewReader(doc))
			require.Error(t, err, doc)
			require.Equal(t, 0, reg.Len())
		}
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ratios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(config), 0o600))

	reg := registry.New()
	n, err := reg.LoadFile(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = reg.LoadFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConcurrent(t *testing.T) {
	reg := registry.New()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				name := "r" + strconv.Itoa(i) + "_" + strconv.Itoa(j)
				_ = reg.Set(name, ratio.Ratio{Num: uint32(i), Div: uint32(j + 1)})
				_, _ = reg.Resolve(name)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 800, reg.Len())
}
