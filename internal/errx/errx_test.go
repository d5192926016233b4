package errx_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cosmichub/api/internal/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestE(t *testing.T) {
	t.Run("nil error stays nil", func(t *testing.T) {
		assert.NoError(t, errx.E("op", errx.Invalid, nil))
	})

	t.Run("message includes operation and cause", func(t *testing.T) {
		err := errx.E("links.Service.Add", errx.Invalid, errors.New("url is required"))

		assert.Equal(t, "links.Service.Add: url is required", err.Error())
	})

	t.Run("wraps the cause", func(t *testing.T) {
		cause := errors.New("boom")
		err := errx.E("op", errx.Upstream, cause)

		require.ErrorIs(t, err, cause)
	})
}

func TestKindOf(t *testing.T) {
	t.Run("extracts the kind", func(t *testing.T) {
		err := errx.E("op", errx.Persistence, errors.New("boom"))

		assert.Equal(t, errx.Persistence, errx.KindOf(err))
	})

	t.Run("extracts through wrapping", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", errx.E("op", errx.Config, errors.New("boom")))

		assert.Equal(t, errx.Config, errx.KindOf(err))
	})

	t.Run("plain errors are unknown", func(t *testing.T) {
		assert.Equal(t, errx.Unknown, errx.KindOf(errors.New("boom")))
		assert.Equal(t, errx.Unknown, errx.KindOf(nil))
	})
}

func TestOpOf(t *testing.T) {
	assert.Equal(t, "github.Client.GetFile",
		errx.OpOf(errx.E("github.Client.GetFile", errx.Upstream, errors.New("boom"))))
	assert.Empty(t, errx.OpOf(errors.New("boom")))
}
