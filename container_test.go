package chatlayout_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fwojciec/chatlayout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(width, height int, trailingSpace bool) chatlayout.LayoutElement {
	return chatlayout.LayoutElement{
		Size:          chatlayout.Size{Width: width, Height: height},
		TrailingSpace: trailingSpace,
		Backing:       chatlayout.ImageBacking{Image: "box"},
	}
}

func TestNewContainer(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-positive width", func(t *testing.T) {
		t.Parallel()
		_, err := chatlayout.NewContainer(0, 1)
		assert.ErrorIs(t, err, chatlayout.ErrInvalidWidth)
		_, err = chatlayout.NewContainer(-5, 1)
		assert.ErrorIs(t, err, chatlayout.ErrInvalidWidth)
	})

	t.Run("rejects non-positive scale", func(t *testing.T) {
		t.Parallel()
		_, err := chatlayout.NewContainer(100, 0)
		assert.ErrorIs(t, err, chatlayout.ErrInvalidScale)
		_, err = chatlayout.NewContainer(100, math.NaN())
		assert.ErrorIs(t, err, chatlayout.ErrInvalidScale)
	})

	t.Run("starts empty", func(t *testing.T) {
		t.Parallel()
		c, err := chatlayout.NewContainer(100, 1.5)
		require.NoError(t, err)
		assert.True(t, c.AtStartOfLine())
		assert.Empty(t, c.Lines())
		assert.Equal(t, 0, c.Height())
		assert.Equal(t, 100, c.Width())
		assert.InDelta(t, 1.5, c.Scale(), 0)
	})
}

func TestContainer_FitsInLine(t *testing.T) {
	t.Parallel()
	c := mustContainer(100, 1)
	assert.True(t, c.FitsInLine(100))
	assert.False(t, c.FitsInLine(101))

	c.AddElementNoLineBreak(box(60, 10, false))
	assert.True(t, c.FitsInLine(40))
	assert.False(t, c.FitsInLine(41))
	assert.False(t, c.AtStartOfLine())
}

func TestContainer_AddElement(t *testing.T) {
	t.Parallel()

	t.Run("breaks when the element does not fit", func(t *testing.T) {
		t.Parallel()
		c := mustContainer(100, 1)
		c.AddElement(box(60, 10, false))
		c.AddElement(box(60, 10, false))

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.Len(t, lines[0].Elements, 1)
		assert.Len(t, lines[1].Elements, 1)
		assert.Equal(t, 0, lines[1].Elements[0].X)
		assert.Equal(t, 10, lines[1].Y)
	})

	t.Run("places an oversized element alone on an empty line", func(t *testing.T) {
		t.Parallel()
		c := mustContainer(100, 1)
		c.AddElement(box(30, 10, false))
		c.AddElement(box(250, 10, false))
		c.AddElement(box(30, 10, false))

		lines := c.Lines()
		require.Len(t, lines, 3)
		assert.Equal(t, 250, lines[1].Width)
	})

	t.Run("no-line-break variant never breaks", func(t *testing.T) {
		t.Parallel()
		c := mustContainer(100, 1)
		c.AddElementNoLineBreak(box(60, 10, false))
		c.AddElementNoLineBreak(box(60, 10, false))
		require.Len(t, c.Lines(), 1)
		assert.Equal(t, 120, c.LineWidth())
	})
}

func TestContainer_TrailingSpaceHangs(t *testing.T) {
	t.Parallel()
	c := mustContainer(100, 1, chatlayout.WithSpaceWidth(5))

	c.AddElement(box(50, 10, true))
	assert.Equal(t, 50, c.LineWidth(), "space is not charged until something follows")
	assert.True(t, c.FitsInLine(45))
	assert.False(t, c.FitsInLine(46))

	c.AddElement(box(45, 10, true))
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 55, lines[0].Elements[1].X)
	assert.Equal(t, 100, c.LineWidth())
}

func TestContainer_BreakLine(t *testing.T) {
	t.Parallel()

	t.Run("bottom-aligns elements on the tallest", func(t *testing.T) {
		t.Parallel()
		c := mustContainer(100, 1, chatlayout.WithLineSpacing(2))
		c.AddElement(box(10, 10, false))
		c.AddElement(box(10, 30, false))
		c.BreakLine()
		c.AddElement(box(10, 10, false))

		lines := c.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, 30, lines[0].Height)
		assert.Equal(t, 20, lines[0].Elements[0].Y)
		assert.Equal(t, 0, lines[0].Elements[1].Y)
		assert.Equal(t, 32, lines[1].Y)
		assert.Equal(t, 42, c.Height())
	})

	t.Run("empty line is not recorded", func(t *testing.T) {
		t.Parallel()
		c := mustContainer(100, 1)
		c.BreakLine()
		c.AddElement(box(10, 10, false))
		c.BreakLine()
		c.BreakLine()
		assert.Len(t, c.Lines(), 1)
		assert.True(t, c.AtStartOfLine())
	})

	t.Run("lines does not close the open line", func(t *testing.T) {
		t.Parallel()
		c := mustContainer(100, 1)
		c.AddElement(box(10, 10, false))
		assert.Len(t, c.Lines(), 1)
		c.AddElement(box(10, 10, false))
		lines := c.Lines()
		require.Len(t, lines, 1)
		assert.Len(t, lines[0].Elements, 2)
	})
}

func TestContainer_FitInvariant(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	c := mustContainer(120, 1, chatlayout.WithSpaceWidth(4))

	for i := 0; i < 2000; i++ {
		if rng.Intn(10) == 0 {
			c.BreakLine()
		} else {
			c.AddElement(box(1+rng.Intn(120), 10, rng.Intn(2) == 0))
		}
		require.LessOrEqual(t, c.LineWidth(), c.Width())
	}
	for _, l := range c.Lines() {
		assert.LessOrEqual(t, l.Width, c.Width())
	}
}
