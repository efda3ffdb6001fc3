package isa

import (
	"encoding/binary"
	"fmt"
)

// Stream container format (big-endian, like the instructions it carries):
//
//	Magic:   "SAM1" (4 bytes)
//	Version: uint16
//	Count:   uint32
//	Records: count extended instructions back to back
//
// Record lengths are self-describing via the payload tag, so no per-record
// length prefix is needed.

const (
	StreamMagic   = "SAM1"
	StreamVersion = 1

	streamHeaderSize = 4 + 2 + 4
)

// EncodeStream frames a sequence of extended instructions into one
// self-describing byte buffer.
func EncodeStream(instructions []ExtendedInstruction) []byte {
	size := streamHeaderSize
	for _, e := range instructions {
		size += e.ByteSize()
	}

	b := make([]byte, 0, size)
	b = append(b, StreamMagic...)
	b = binary.BigEndian.AppendUint16(b, StreamVersion)
	b = binary.BigEndian.AppendUint32(b, uint32(len(instructions)))
	for _, e := range instructions {
		b = e.AppendBytes(b)
	}
	return b
}

// DecodeStream parses a framed instruction stream. It rejects bad magic,
// unsupported versions, truncated buffers, and trailing bytes.
func DecodeStream(data []byte) ([]ExtendedInstruction, error) {
	if len(data) < streamHeaderSize {
		return nil, fmt.Errorf("%w: got %d bytes, header needs %d",
			ErrBufferTooShort, len(data), streamHeaderSize)
	}
	if string(data[:4]) != StreamMagic {
		return nil, ErrInvalidMagic
	}
	version := binary.BigEndian.Uint16(data[4:6])
	if version != StreamVersion {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}
	count := binary.BigEndian.Uint32(data[6:streamHeaderSize])

	// Every record is at least 7 bytes, so a header count the remaining
	// buffer cannot hold is rejected before anything is allocated for it.
	rest := uint64(len(data) - streamHeaderSize)
	if uint64(count)*(InstructionSize+1) > rest {
		return nil, fmt.Errorf("%w: count %d needs at least %d bytes, got %d",
			ErrBufferTooShort, count, uint64(count)*(InstructionSize+1), rest)
	}

	instructions := make([]ExtendedInstruction, 0, count)
	off := streamHeaderSize
	for i := uint32(0); i < count; i++ {
		if len(data)-off < InstructionSize+1 {
			return nil, fmt.Errorf("record %d: %w: got %d bytes, need at least %d",
				i, ErrBufferTooShort, len(data)-off, InstructionSize+1)
		}
		pt, err := PayloadTypeFromByte(data[off+InstructionSize])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		total := pt.TotalSize()
		if len(data)-off < total {
			return nil, fmt.Errorf("record %d: %w: got %d bytes, need %d",
				i, ErrBufferTooShort, len(data)-off, total)
		}
		e, err := ParseExtended(data[off : off+total])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		instructions = append(instructions, e)
		off += total
	}

	if off != len(data) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTrailingBytes, len(data)-off)
	}
	return instructions, nil
}
