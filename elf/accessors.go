package elf

import (
	"fmt"
	"math/bits"
)

// checkedEntryOffset computes base + stride*index, reporting overflow
// instead of silently wrapping. A crafted index (reachable via the
// SHN_LORESERVE section-count escape or a corrupted sh_size/sh_entsize)
// must never be allowed to wrap an offset back into bounds.
func checkedEntryOffset(base, stride, index uint64) (uint64, bool) {
	product, carry := bits.Mul64(stride, index)
	if carry != 0 {
		return 0, false
	}
	sum, carry := bits.Add64(base, product, 0)
	if carry != 0 {
		return 0, false
	}
	return sum, true
}

// GetSectionHeader decodes the section header at index, bounds-checking
// against header.TrueSectionHeaderCount (not the raw e_shnum field, which
// may merely be the SHN_LORESERVE escape marker) and resolving its name
// through the appropriate string table.
func GetSectionHeader(buffer []byte, header *ParsedHeader, index uint64) (*SectionRecord, error) {
	if index >= header.TrueSectionHeaderCount {
		return nil, fmt.Errorf("elf: section index %d out of range: %w", index, ErrInvalid)
	}

	entrySize := uint64(header.SectionHeaderEntrySize)
	offset, ok := checkedEntryOffset(header.SectionHeaderOffset, entrySize, index)
	if !ok {
		return nil, fmt.Errorf("elf: section index %d overflows offset computation: %w", index, ErrInvalid)
	}

	var section SectionRecord
	switch header.Class {
	case Class64:
		if offset > header.Size || header.Size-offset < Elf64SectionHeaderEntrySize {
			return nil, fmt.Errorf("elf: section header %d out of bounds: %w", index, ErrInvalid)
		}
		section = readShdr64(buffer[offset:], isLSB(header.Data))
	default:
		if offset > header.Size || header.Size-offset < Elf32SectionHeaderEntrySize {
			return nil, fmt.Errorf("elf: section header %d out of bounds: %w", index, ErrInvalid)
		}
		section = readShdr32(buffer[offset:], isLSB(header.Data))
	}

	section.Index = index
	section.Name = resolveSectionName(buffer, header, &section)

	return &section, nil
}

// GetSectionHeaderByName linearly scans every section for an exact name
// match, skipping (rather than failing on) any index that fails to
// decode.
func GetSectionHeaderByName(buffer []byte, header *ParsedHeader, name string) (*SectionRecord, error) {
	for i := uint64(0); i < header.TrueSectionHeaderCount; i++ {
		section, err := GetSectionHeader(buffer, header, i)
		if err != nil {
			continue
		}
		if section.Name == name {
			return section, nil
		}
	}
	return nil, fmt.Errorf("elf: no section named %q: %w", name, ErrNotFound)
}

// GetSymbol decodes the symbol table entry at index, bounds-checking
// against the derived symbol count.
func GetSymbol(buffer []byte, header *ParsedHeader, index uint64) (*SymbolRecord, error) {
	if index >= header.SymbolCount {
		return nil, fmt.Errorf("elf: symbol index %d out of range: %w", index, ErrInvalid)
	}

	offset, ok := checkedEntryOffset(header.SymbolTableOffset, header.SymbolEntrySize, index)
	if !ok {
		return nil, fmt.Errorf("elf: symbol index %d overflows offset computation: %w", index, ErrInvalid)
	}

	var symbol SymbolRecord
	switch header.Class {
	case Class64:
		if offset > header.Size || header.Size-offset < Elf64SymbolEntrySize {
			return nil, fmt.Errorf("elf: symbol %d out of bounds: %w", index, ErrInvalid)
		}
		symbol = readSym64(buffer[offset:], isLSB(header.Data))
	default:
		if offset > header.Size || header.Size-offset < Elf32SymbolEntrySize {
			return nil, fmt.Errorf("elf: symbol %d out of bounds: %w", index, ErrInvalid)
		}
		symbol = readSym32(buffer[offset:], isLSB(header.Data))
	}

	symbol.Index = index
	symbol.Name = resolveSymbolName(buffer, header, &symbol)

	return &symbol, nil
}

// GetSymbolByName linearly scans every symbol for an exact name match.
func GetSymbolByName(buffer []byte, header *ParsedHeader, name string) (*SymbolRecord, error) {
	for i := uint64(0); i < header.SymbolCount; i++ {
		symbol, err := GetSymbol(buffer, header, i)
		if err != nil {
			continue
		}
		if symbol.Name == name {
			return symbol, nil
		}
	}
	return nil, fmt.Errorf("elf: no symbol named %q: %w", name, ErrNotFound)
}

// GetProgramHeader decodes the program header at index.
func GetProgramHeader(buffer []byte, header *ParsedHeader, index uint64) (*ProgramHeaderRecord, error) {
	if index >= uint64(header.ProgramHeaderCount) {
		return nil, fmt.Errorf("elf: program header index %d out of range: %w", index, ErrInvalid)
	}

	entrySize := uint64(header.ProgramHeaderEntrySize)
	offset, ok := checkedEntryOffset(header.ProgramHeaderOffset, entrySize, index)
	if !ok {
		return nil, fmt.Errorf("elf: program header index %d overflows offset computation: %w", index, ErrInvalid)
	}

	var ph ProgramHeaderRecord
	switch header.Class {
	case Class64:
		if offset > header.Size || header.Size-offset < Elf64ProgramHeaderEntrySize {
			return nil, fmt.Errorf("elf: program header %d out of bounds: %w", index, ErrInvalid)
		}
		ph = readPhdr64(buffer[offset:], isLSB(header.Data))
	default:
		if offset > header.Size || header.Size-offset < Elf32ProgramHeaderEntrySize {
			return nil, fmt.Errorf("elf: program header %d out of bounds: %w", index, ErrInvalid)
		}
		ph = readPhdr32(buffer[offset:], isLSB(header.Data))
	}

	ph.Index = index
	return &ph, nil
}

// CopySegment copies the in-memory image of the segment_index'th program
// header's segment into dest, starting skip bytes into the segment's
// memory image and copying at most num_bytes. Bytes past the segment's
// on-disk file size (up to p_memsz) are zero-filled rather than copied.
//
// If dest is nil, CopySegment runs in query mode and returns the
// segment's p_memsz without copying anything. On success it returns the
// number of bytes of the segment still left to copy after this call,
// which is 0 once skip+num_bytes has reached p_memsz. On failure to read
// the program header, or if the header describes a file range that
// exceeds the buffer, it returns ErrorSentinel; this is a numeric
// contract of its own, independent of the error taxonomy CopySegment's
// siblings use.
func CopySegment(
	buffer []byte,
	header *ParsedHeader,
	segmentIndex uint64,
	dest []byte,
	skip uint64,
	numBytes uint64,
) uint64 {
	ph, err := GetProgramHeader(buffer, header, segmentIndex)
	if err != nil {
		return ErrorSentinel
	}

	if dest == nil {
		return ph.Memsz
	}

	fileEnd, carry := bits.Add64(ph.Offset, ph.Filesz, 0)
	if carry != 0 || fileEnd > header.Size {
		return ErrorSentinel
	}

	if skip > ph.Memsz {
		skip = ph.Memsz
	}
	remaining := ph.Memsz - skip
	if numBytes > remaining {
		numBytes = remaining
	}

	totalCopied := uint64(0)
	destOffset := 0

	if skip < ph.Filesz {
		numFileBytes := ph.Filesz - skip
		if numFileBytes > numBytes {
			numFileBytes = numBytes
		}
		srcOffset := ph.Offset + skip
		copy(dest[destOffset:], buffer[srcOffset:srcOffset+numFileBytes])
		destOffset += int(numFileBytes)
		numBytes -= numFileBytes
		totalCopied += numFileBytes
	}

	for i := destOffset; i < destOffset+int(numBytes); i++ {
		dest[i] = 0
	}
	totalCopied += numBytes

	return ph.Memsz - skip - totalCopied
}

// resolveSectionName looks up a section's name string, handling the
// self-referencing case where the section being named is itself the
// section name string table (its own sh_offset must be used rather than
// header.StringTableOffset, which isn't resolved until after this
// section has been read during Parse).
func resolveSectionName(buffer []byte, header *ParsedHeader, section *SectionRecord) string {
	if header.TrueSectionNameStringTableIndex == 0 {
		return ""
	}
	if section.Index == 0 {
		return ""
	}

	var nameOffset uint64
	if section.Index == header.TrueSectionNameStringTableIndex {
		nameOffset = section.Offset + uint64(section.NameOffset)
	} else {
		nameOffset = header.StringTableOffset + uint64(section.NameOffset)
	}

	name, ok := readBoundedCString(buffer, nameOffset)
	if !ok {
		return ""
	}
	return name
}

// resolveSymbolName looks up a symbol's name string through the derived
// symbol string table offset.
func resolveSymbolName(buffer []byte, header *ParsedHeader, symbol *SymbolRecord) string {
	if header.SymbolStringTableOffset == 0 {
		return ""
	}
	if symbol.Index == 0 {
		return ""
	}

	nameOffset := header.SymbolStringTableOffset + uint64(symbol.NameOffset)
	name, ok := readBoundedCString(buffer, nameOffset)
	if !ok {
		return ""
	}
	return name
}
