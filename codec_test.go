package ratio_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/uptrace/ratio"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    ratio.Ratio
		wantErr bool
	}{
		{in: "3/4", want: ratio.Ratio{Num: 3, Div: 4}},
		{in: " 30000 / 1001 ", want: ratio.Ratio{Num: 30000, Div: 1001}},
		{in: "7", want: ratio.Ratio{Num: 7, Div: 1}},
		{in: "2/4", want: ratio.Ratio{Num: 2, Div: 4}},
		{in: "0/0", want: ratio.Undefined},
		{in: "4294967295/1", want: ratio.Ratio{Num: 4294967295, Div: 1}},
		{in: "", wantErr: true},
		{in: "/4", wantErr: true},
		{in: "3/", wantErr: true},
		{in: "-3/4", wantErr: true},
		{in: "3/4/5", wantErr: true},
		{in: "1.5", wantErr: true},
		{in: "4294967296/1", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			got, err := ratio.Parse(test.in)
			if test.wantErr {
				require.ErrorIs(t, err, ratio.ErrSyntax)
				return
			}
			require.NoError(t, err)
			require.Equal(t, test.want, got)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "3/4", ratio.Ratio{Num: 3, Div: 4}.String())
	assert.Equal(t, "0/0", ratio.Undefined.String())
	assert.Equal(t, "1/1", ratio.Unit.String())
	assert.Equal(t, ratio.Ratio{Num: 3, Div: 4}, ratio.MustParse("3/4"))
	assert.Panics(t, func() { ratio.MustParse("x") })
}

type model struct {
	Scale ratio.Ratio `json:"scale" yaml:"scale" msgpack:"scale"`
}

func TestJSON(t *testing.T) {
	b, err := json.Marshal(model{Scale: ratio.Ratio{Num: 2, Div: 4}})
	require.NoError(t, err)
	require.Equal(t, `{"scale":"2/4"}`, string(b))

	var m model
	require.NoError(t, json.Unmarshal(b, &m))
	require.Equal(t, ratio.Ratio{Num: 2, Div: 4}, m.Scale)

	require.Error(t, json.Unmarshal([]byte(`{"scale":"nope"}`), &m))
}

func TestYAML(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		b, err := yaml.Marshal(model{Scale: ratio.Ratio{Num: 3, Div: 4}})
		require.NoError(t, err)
		require.Equal(t, "scale: 3/4\n", string(b))
	})

	t.Run("scalar", func(t *testing.T) {
		var m model
		require.NoError(t, yaml.Unmarshal([]byte("scale: 3/4\n"), &m))
		require.Equal(t, ratio.Ratio{Num: 3, Div: 4}, m.Scale)

		require.NoError(t, yaml.Unmarshal([]byte("scale: 5\n"), &m))
		require.Equal(t, ratio.Ratio{Num: 5, Div: 1}, m.Scale)
	})

	t.Run("mapping", func(t *testing.T) {
		var m model
		require.NoError(t, yaml.Unmarshal([]byte("scale: {num: 30000, div: 1001}\n"), &m))
		require.Equal(t, ratio.Ratio{Num: 30000, Div: 1001}, m.Scale)
	})

	t.Run("invalid", func(t *testing.T) {
		var m model
		require.Error(t, yaml.Unmarshal([]byte("scale: {num: 1}\n"), &m))
		require.Error(t, yaml.Unmarshal([]byte("scale: [1, 2]\n"), &m))
		require.Error(t, yaml.Unmarshal([]byte("scale: abc\n"), &m))
	})
}

func TestMsgpack(t *testing.T) {
	in := model{Scale: ratio.Ratio{Num: 30000, Div: 1001}}

	b, err := msgpack.Marshal(in)
	require.NoError(t, err)

	var out model
	require.NoError(t, msgpack.Unmarshal(b, &out))
	require.Equal(t, in, out)

	t.Run("array header", func(t *testing.T) {
		b, err := msgpack.Marshal(ratio.Ratio{Num: 1, Div: 2})
		require.NoError(t, err)
		require.Equal(t, byte(0x92), b[0])
	})

	t.Run("wrong length", func(t *testing.T) {
		b, err := msgpack.Marshal([]uint32{1, 2, 3})
		require.NoError(t, err)

		var r ratio.Ratio
		require.Error(t, msgpack.Unmarshal(b, &r))
	})
}

func TestSQL(t *testing.T) {
	v, err := ratio.Ratio{Num: 3, Div: 4}.Value()
	require.NoError(t, err)
	require.Equal(t, "3/4", v)

	tests := []struct {
		name string
		src  any
		want ratio.Ratio
	}{
		{name: "string", src: "3/4", want: ratio.Ratio{Num: 3, Div: 4}},
		{name: "bytes", src: []byte("1/3"), want: ratio.Ratio{Num: 1, Div: 3}},
		{name: "int64", src: int64(5), want: ratio.Ratio{Num: 5, Div: 1}},
		{name: "null", src: nil, want: ratio.Undefined},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := ratio.Unit
			require.NoError(t, r.Scan(test.src))
			require.Equal(t, test.want, r)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		var r ratio.Ratio
		require.ErrorIs(t, r.Scan("x/y"), ratio.ErrSyntax)
	})
}
