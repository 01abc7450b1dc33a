// Copyright (c) 2026 Gumruk. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/gumruk/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Nil(t, slice.Map[int, string](nil, strconv.Itoa))
	assert.Equal(t, []string{}, slice.Map([]int{}, strconv.Itoa))
	assert.Equal(t, []string{"1", "20"}, slice.Map([]int{1, 20}, strconv.Itoa))
}
