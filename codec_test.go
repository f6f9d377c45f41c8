package diet

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeTestSet() *Set[int64] {
	return Of(
		Span[int64](math.MinInt64, math.MinInt64+10),
		Span[int64](-50, -20),
		Span[int64](5, 6),
		Span[int64](9, 10),
		Point[int64](math.MaxInt64),
	)
}

func TestCodec_ToBytes_FromBytes(t *testing.T) {
	s := makeTestSet()
	data := s.ToBytes()
	assert.Len(t, data, 4+5*16)

	s2 := FromBytes[int64](data)
	assert.True(t, s.Equal(s2))
}

func TestCodec_WriteTo_ReadFrom_Methods(t *testing.T) {
	s := makeTestSet()
	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	s2 := Of(Span[int64](1000, 2000))
	m, err := s2.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, n, m)
	assert.True(t, s.Equal(s2))
}

func TestCodec_Package_ReadFrom(t *testing.T) {
	s := makeTestSet()
	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	s2, err := ReadFrom[int64](bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.True(t, s.Equal(s2))
}

func TestCodec_EmptySet(t *testing.T) {
	s := New[uint16]()
	data := s.ToBytes()
	assert.Equal(t, []byte{0, 0, 0, 0}, data)

	s2 := FromBytes[uint16](data)
	assert.Equal(t, 0, s2.Len())

	s3 := FromBytes[uint16](nil)
	assert.Equal(t, 0, s3.Len())
}

func TestCodec_ManyRuns(t *testing.T) {
	s := New[uint32]()
	for i := uint32(0); i < 5000; i++ {
		s.AddRange(Span(i*10, i*10+3))
	}

	s2 := FromBytes[uint32](s.ToBytes())
	assert.Equal(t, 5000, s2.Len())
	assert.True(t, s.Equal(s2))
}

func TestCodec_Signed(t *testing.T) {
	s := Of(Span[int8](-128, -100), Span[int8](0, 0), Span[int8](100, 127))
	s2 := FromBytes[int8](s.ToBytes())
	assert.True(t, s.Equal(s2))
}

func TestCodec_Truncated(t *testing.T) {
	data := makeTestSet().ToBytes()
	_, err := ReadFrom[int64](bytes.NewReader(data[:len(data)-3]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = ReadFrom[int64](bytes.NewReader(data[:4]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestCodec_OutOfRange(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(1)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []uint64{1, 300}))

	_, err := ReadFrom[uint8](&buf)
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestCodec_Binary(t *testing.T) {
	s := makeTestSet()
	data, err := s.MarshalBinary()
	require.NoError(t, err)

	var s2 Set[int64]
	require.NoError(t, s2.UnmarshalBinary(data))
	assert.True(t, s.Equal(&s2))

	assert.ErrorIs(t, s2.UnmarshalBinary(nil), io.ErrUnexpectedEOF)
}

func TestCodec_JSON(t *testing.T) {
	s := Of(Span(5, 6), Span(9, 10))
	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `[[5,6],[9,10]]`, string(data))

	var s2 Set[int]
	require.NoError(t, json.Unmarshal(data, &s2))
	assert.True(t, s.Equal(&s2))
}

func TestCodec_JSON_Empty(t *testing.T) {
	data, err := json.Marshal(New[int]())
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	var s Set[int]
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Equal(t, 0, s.Len())

	assert.Error(t, json.Unmarshal([]byte(`{}`), &s))
}

func TestCodec_JSON_Embedded(t *testing.T) {
	type allocation struct {
		Name string       `json:"name"`
		IDs  *Set[uint64] `json:"ids"`
	}

	in := allocation{Name: "vlan", IDs: Of(Span[uint64](1, 99), Point[uint64](4094))}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"vlan","ids":[[1,99],[4094,4094]]}`, string(data))

	var out allocation
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.IDs.Equal(out.IDs))
}

func TestCodec_JSON_ByValue(t *testing.T) {
	type allocation struct {
		IDs Set[int] `json:"ids"`
	}

	var in allocation
	in.IDs.AddRange(Span(1, 5))
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ids":[[1,5]]}`, string(data))

	var out allocation
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, in.IDs.Equal(&out.IDs))
}

func TestCodec_Binary_ByValue(t *testing.T) {
	s := makeTestSet()
	var m encoding.BinaryMarshaler = *s
	data, err := m.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, s.ToBytes(), data)
}

func TestCodec_JSON_BadPair(t *testing.T) {
	for _, input := range []string{`[[5]]`, `[[1,2,3]]`, `[[]]`, `[[5],[1,2,3]]`} {
		var s Set[int]
		assert.ErrorIs(t, json.Unmarshal([]byte(input), &s), ErrCorrupt, input)
	}
}

func TestCodec_ReadFrom_KeepsOnError(t *testing.T) {
	s := makeTestSet()
	want := s.Runs()

	// Truncated payload
	data := makeTestSet().ToBytes()
	_, err := s.ReadFrom(bytes.NewReader(data[:len(data)-3]))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, want, s.Runs())

	// Missing header
	_, err = s.ReadFrom(bytes.NewReader(nil))
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, want, s.Runs())

	// Second run does not fit the type
	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint32(2)))
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, []uint64{1, 2, 4, 300}))

	u := Of(Span[uint8](10, 20))
	_, err = u.ReadFrom(&buf)
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.Equal(t, []Run[uint8]{Span[uint8](10, 20)}, u.Runs())
}
