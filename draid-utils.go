package draid

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"

	"github.com/bwmarrin/snowflake"

	"github.com/DurantVivado/Draid/xlog"
)

var uidNode *snowflake.Node

func init() {
	var err error
	uidNode, err = snowflake.NewNode(1)
	if err != nil {
		xlog.Fatal(err)
	}
}

//genUUID generates a globally unique id for a map or candidate
func genUUID() int64 {
	return uidNode.Generate().Int64()
}

//makeArr2DInt allocates a rows x cols int table backed by one contiguous
//array, so the whole table stays cache-friendly and frees as a unit
func makeArr2DInt(rows, cols int) [][]int {
	backing := make([]int, rows*cols)
	arr := make([][]int, rows)
	for i := range arr {
		arr[i] = backing[i*cols : (i+1)*cols : (i+1)*cols]
	}
	return arr
}

//newRand returns a generator seeded from system entropy, used whenever the
//caller does not inject one
func newRand() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		xlog.Fatal(err)
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
