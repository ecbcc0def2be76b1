package exchange_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cssb/exchange"
	"cssb/shape"
)

func TestToJSON(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"array", []int{1, 2, 3}, `[1,2,3]`},
		{"rectangle", shape.NewRectangle(10, 20), `{"width":10,"height":20}`},
		{"map", map[string]int{"width": 10, "height": 20}, `{"height":20,"width":10}`},
		{"nested", struct {
			Name  string   `json:"name"`
			Items []string `json:"items"`
		}{"x", []string{"b", "a"}}, `{"name":"x","items":["b","a"]}`},
		{"null", nil, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exchange.ToJSON(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToJSON_Unsupported(t *testing.T) {
	_, err := exchange.ToJSON(make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chan int")
}

func TestFromJSON_Rectangle(t *testing.T) {
	r, err := exchange.FromJSON[shape.Rectangle](`{"width":10, "height":20}`)
	require.NoError(t, err)
	require.NotNil(t, r)

	assert.Equal(t, 10.0, r.Width)
	assert.Equal(t, 20.0, r.Height)
	assert.Equal(t, 200.0, r.Area())
}

func TestFromJSON_RoundTrip(t *testing.T) {
	orig := shape.NewRectangle(3, 7)

	text, err := exchange.ToJSON(orig)
	require.NoError(t, err)

	back, err := exchange.FromJSON[shape.Rectangle](text)
	require.NoError(t, err)
	assert.Equal(t, orig, *back)
	assert.Equal(t, orig.Area(), back.Area())
}

func TestFromJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"malformed", `{"width":`},
		{"unknown field", `{"width":1,"height":2,"depth":3}`},
		{"wrong type", `{"width":"wide"}`},
		{"trailing data", `{"width":1} {"height":2}`},
		{"empty", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := exchange.FromJSON[shape.Rectangle](tt.text)
			require.Error(t, err)
			assert.Nil(t, r)
		})
	}
}
