package elf

import (
	"testing"

	"github.com/pattyshack/gt/testing/expect"
	"github.com/pattyshack/gt/testing/suite"
)

type CopySegmentSuite struct{}

func TestCopySegment(t *testing.T) {
	suite.RunTests(t, &CopySegmentSuite{})
}

func (CopySegmentSuite) TestQueryModeReturnsMemsz(t *testing.T) {
	buffer := buildElf64Fixture()
	header, err := Parse(buffer)
	expect.Nil(t, err)

	remaining := CopySegment(buffer, header, 0, nil, 0, 0)
	expect.Equal(t, uint64(32), remaining)
}

func (CopySegmentSuite) TestFullCopyWithZeroFillTail(t *testing.T) {
	buffer := buildElf64Fixture()
	header, err := Parse(buffer)
	expect.Nil(t, err)

	dest := make([]byte, 32)
	remaining := CopySegment(buffer, header, 0, dest, 0, 32)
	expect.Equal(t, uint64(0), remaining)

	expectedFile := []byte{
		0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF,
		0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF,
	}
	expect.Equal(t, expectedFile, dest[0:16])
	expect.Equal(t, make([]byte, 16), dest[16:32])
}

func (CopySegmentSuite) TestChunkedCopy(t *testing.T) {
	buffer := buildElf64Fixture()
	header, err := Parse(buffer)
	expect.Nil(t, err)

	first := make([]byte, 8)
	remaining := CopySegment(buffer, header, 0, first, 0, 8)
	expect.Equal(t, uint64(24), remaining)
	expect.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF}, first)

	second := make([]byte, 24)
	remaining = CopySegment(buffer, header, 0, second, 8, 24)
	expect.Equal(t, uint64(0), remaining)
	expect.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF}, second[0:8])
	expect.Equal(t, make([]byte, 16), second[8:24])
}

func (CopySegmentSuite) TestSkipPastMemszSaturates(t *testing.T) {
	buffer := buildElf64Fixture()
	header, err := Parse(buffer)
	expect.Nil(t, err)

	dest := make([]byte, 4)
	remaining := CopySegment(buffer, header, 0, dest, 1000, 4)
	expect.Equal(t, uint64(0), remaining)
	expect.Equal(t, make([]byte, 4), dest)
}

func (CopySegmentSuite) TestBadProgramHeaderIndexReturnsSentinel(t *testing.T) {
	buffer := buildElf64Fixture()
	header, err := Parse(buffer)
	expect.Nil(t, err)

	dest := make([]byte, 4)
	remaining := CopySegment(buffer, header, 1, dest, 0, 4)
	expect.Equal(t, ErrorSentinel, remaining)
}

func (CopySegmentSuite) TestOverflowingFileRangeReturnsSentinel(t *testing.T) {
	buffer := buildElf64Fixture()
	header, err := Parse(buffer)
	expect.Nil(t, err)

	// Corrupt p_offset to a value so large that p_offset+p_filesz wraps
	// past the top of uint64 and lands back under header.Size, which
	// would defeat a plain (unchecked) p_offset+p_filesz > header.Size
	// comparison.
	phdrOffsetOffset := uint64(64) + 8
	wrapped := ^uint64(0) - 10 // + filesz (16) wraps to 5, under header.Size (574)
	for i := 0; i < 8; i++ {
		buffer[phdrOffsetOffset+uint64(i)] = byte(wrapped >> (8 * uint(i)))
	}

	dest := make([]byte, 4)
	remaining := CopySegment(buffer, header, 0, dest, 0, 4)
	expect.Equal(t, ErrorSentinel, remaining)
}

func (CopySegmentSuite) TestOutOfBoundsFileRangeReturnsSentinel(t *testing.T) {
	buffer := buildElf64Fixture()
	header, err := Parse(buffer)
	expect.Nil(t, err)

	// Corrupt p_filesz (at byte 32 within the one program header, which
	// starts at e_phoff=64) so that p_offset+p_filesz exceeds the buffer.
	phdrFileszOffset := uint64(64) + 32
	buffer[phdrFileszOffset] = 0xFF
	buffer[phdrFileszOffset+1] = 0xFF
	buffer[phdrFileszOffset+2] = 0xFF
	buffer[phdrFileszOffset+3] = 0xFF

	dest := make([]byte, 4)
	remaining := CopySegment(buffer, header, 0, dest, 0, 4)
	expect.Equal(t, ErrorSentinel, remaining)
}
