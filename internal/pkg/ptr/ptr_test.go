//go:build unit

package ptr_test

import (
	"testing"
	"time"

	"gudlft-booking/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
)

func TestTo(t *testing.T) {
	d := time.Date(2020, 3, 27, 10, 0, 0, 0, time.UTC)
	p := ptr.To(d)

	assert.Equal(t, d, *p)
	d = d.Add(time.Hour)
	assert.NotEqual(t, d, *p, "pointer must not alias the argument")
}
