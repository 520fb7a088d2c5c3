package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldSink_Put(t *testing.T) {
	sink := FieldSink[int32]{Slice: make([]int32, 3)}
	sink.Put(1, 42)
	assert.Equal(t, []int32{0, 42, 0}, sink.Slice)
}

func TestMatrixSink_Put(t *testing.T) {
	matrix := [][]int32{{0, 0}, {0, 0}}
	sink := MatrixSink[int32]{Matrix: matrix, Col: 1}
	sink.Put(0, 7)
	assert.Equal(t, int32(7), matrix[0][1])
}
