package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListSeverities(t *testing.T) {
	l := List{
		Notef("construction is provisional"),
		Warningf("bend radius raised to %.3f", 0.024),
	}
	assert.False(t, l.HasErrors())
	assert.NoError(t, l.Err())
	assert.Len(t, l.Filter(Warning), 1)
	assert.Equal(t, "construction is provisional", l.First())

	l = append(l, Errorf("diameter %.3f must be positive", -0.012))
	assert.True(t, l.HasErrors())
	err := l.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestListString(t *testing.T) {
	l := List{Warningf("a"), Errorf("b")}
	assert.Equal(t, "warning: a\nerror: b", l.String())
	assert.Equal(t, "", List(nil).First())
	assert.Equal(t, "severity(7)", Severity(7).String())
}
