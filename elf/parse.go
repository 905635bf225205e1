package elf

import (
	"bytes"
	"errors"
	"fmt"
)

// ErrInvalid wraps every error returned for a buffer, index, or name that
// does not satisfy the format's constraints (malformed identification,
// out-of-range index, bounds violation, ...).
var ErrInvalid = errors.New("elf: invalid")

// ErrNotFound wraps every error returned when a lookup by name legitimately
// has no match.
var ErrNotFound = errors.New("elf: not found")

// ErrorSentinel is returned by CopySegment in place of an error value,
// since its return value is otherwise the number of bytes left to copy.
const ErrorSentinel = ^uint64(0)

func isLSB(data DataEncoding) bool {
	return data == DataEncodingTwosComplementLittleEndian
}

// Parse decodes the ELF identification, file header, and derived
// metadata (true section count, true string-table index, symbol table
// location) out of buffer. The returned *ParsedHeader is a self-contained
// descriptor: subsequent accessors take both buffer and header
// explicitly and never retain a copy of buffer themselves.
func Parse(buffer []byte) (*ParsedHeader, error) {
	if uint64(len(buffer)) < Elf32HeaderSize {
		return nil, fmt.Errorf("elf: buffer too short for a header: %w", ErrInvalid)
	}

	if !bytesEqual(buffer[0:4], IdentifierMagic) {
		return nil, fmt.Errorf("elf: bad magic: %w", ErrInvalid)
	}

	class := Class(buffer[4])
	data := DataEncoding(buffer[5])
	version := buffer[6]

	if !IsValidClass(class) {
		return nil, fmt.Errorf("elf: invalid ei_class %d: %w", class, ErrInvalid)
	}
	if !IsValidDataEncoding(data) {
		return nil, fmt.Errorf("elf: invalid ei_data %d: %w", data, ErrInvalid)
	}
	if !IsValidIdentifierVersion(version) {
		return nil, fmt.Errorf("elf: invalid ei_version %d: %w", version, ErrInvalid)
	}

	lsb := isLSB(data)

	var header ParsedHeader
	header.Class = class
	header.Data = data
	header.Version = version
	header.OSABI = OperatingSystemABI(buffer[7])
	header.ABIVersion = buffer[8]
	header.Size = uint64(len(buffer))

	switch class {
	case Class64:
		if uint64(len(buffer)) < Elf64HeaderSize {
			return nil, fmt.Errorf("elf: buffer too short for a 64-bit header: %w", ErrInvalid)
		}
		decoded := readEhdr64(buffer, lsb)
		if !IsValidFormatVersion(decoded.FormatVersion) {
			return nil, fmt.Errorf("elf: invalid e_version %d: %w", decoded.FormatVersion, ErrInvalid)
		}
		header.Type = decoded.Type
		header.Machine = decoded.Machine
		header.FormatVersion = decoded.FormatVersion
		header.Entry = decoded.Entry
		header.ProgramHeaderOffset = decoded.ProgramHeaderOffset
		header.SectionHeaderOffset = decoded.SectionHeaderOffset
		header.Flags = decoded.Flags
		header.HeaderSize = decoded.HeaderSize
		header.ProgramHeaderEntrySize = decoded.ProgramHeaderEntrySize
		header.ProgramHeaderCount = decoded.ProgramHeaderCount
		header.SectionHeaderEntrySize = decoded.SectionHeaderEntrySize
		header.SectionHeaderCount = decoded.SectionHeaderCount
		header.SectionNameStringTableIndex = decoded.SectionNameStringTableIndex
	default:
		decoded := readEhdr32(buffer, lsb)
		if !IsValidFormatVersion(decoded.FormatVersion) {
			return nil, fmt.Errorf("elf: invalid e_version %d: %w", decoded.FormatVersion, ErrInvalid)
		}
		header.Type = decoded.Type
		header.Machine = decoded.Machine
		header.FormatVersion = decoded.FormatVersion
		header.Entry = decoded.Entry
		header.ProgramHeaderOffset = decoded.ProgramHeaderOffset
		header.SectionHeaderOffset = decoded.SectionHeaderOffset
		header.Flags = decoded.Flags
		header.HeaderSize = decoded.HeaderSize
		header.ProgramHeaderEntrySize = decoded.ProgramHeaderEntrySize
		header.ProgramHeaderCount = decoded.ProgramHeaderCount
		header.SectionHeaderEntrySize = decoded.SectionHeaderEntrySize
		header.SectionHeaderCount = decoded.SectionHeaderCount
		header.SectionNameStringTableIndex = decoded.SectionNameStringTableIndex
	}

	header.TrueSectionHeaderCount = resolveTrueSectionHeaderCount(buffer, &header)
	header.TrueSectionNameStringTableIndex = resolveTrueSectionNameStringTableIndex(buffer, &header)

	if header.TrueSectionNameStringTableIndex == 0 {
		header.StringTableOffset = 0
	} else {
		section, err := GetSectionHeader(buffer, &header, header.TrueSectionNameStringTableIndex)
		if err != nil {
			return nil, fmt.Errorf("elf: could not read section name string table section: %w", ErrInvalid)
		}
		header.StringTableOffset = section.Offset
	}

	symtab, err := GetSectionHeaderByName(buffer, &header, SymbolTableName)
	if err != nil {
		// Absence of .symtab is not an error: a file need not carry one.
		return &header, nil
	}

	header.SymbolTableOffset = symtab.Offset
	header.SymbolEntrySize = symtab.Entsize
	if symtab.Entsize != 0 {
		count := symtab.Size / symtab.Entsize
		if max := maxEntriesAt(&header, symtab.Offset, symtab.Entsize); count > max {
			count = max
		}
		header.SymbolCount = count
	}

	linked, err := GetSectionHeader(buffer, &header, uint64(symtab.Link))
	if err != nil {
		return &header, nil
	}
	header.SymbolStringTableOffset = linked.Offset

	return &header, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// maxEntriesAt reports how many entrySize-byte entries could possibly fit
// in buffer starting at tableOffset. A count taken from a section's
// sh_size (the e_shnum escape, or .symtab's sh_size/sh_entsize) can never
// legitimately exceed this, since every entry it counts
// must actually occupy space in the buffer; clamping here is what keeps a
// forged huge count from turning every subsequent linear scan over that
// table into an effectively unbounded loop.
func maxEntriesAt(header *ParsedHeader, tableOffset, entrySize uint64) uint64 {
	if entrySize == 0 || tableOffset > header.Size {
		return 0
	}
	return (header.Size - tableOffset) / entrySize
}

// resolveTrueSectionHeaderCount resolves the SHN_LORESERVE escape: when
// e_shnum is 0, the real count is stored in section 0's sh_size, but
// only if section 0 reads back as a well-formed null section.
func resolveTrueSectionHeaderCount(buffer []byte, header *ParsedHeader) uint64 {
	if header.SectionHeaderCount != 0 {
		return uint64(header.SectionHeaderCount)
	}

	header.TrueSectionHeaderCount = 1
	section, err := GetSectionHeader(buffer, header, 0)
	if err != nil || !isNullSection(section) {
		return 0
	}

	max := maxEntriesAt(header, header.SectionHeaderOffset, uint64(header.SectionHeaderEntrySize))
	if section.Size > max {
		return max
	}
	return section.Size
}

// resolveTrueSectionNameStringTableIndex resolves the SHN_XINDEX escape:
// when e_shstrndx is SHN_XINDEX, the real index is stored in section 0's
// sh_link field.
func resolveTrueSectionNameStringTableIndex(buffer []byte, header *ParsedHeader) uint64 {
	if header.TrueSectionHeaderCount == 0 {
		return 0
	}

	if uint64(header.SectionNameStringTableIndex) == SectionIndexXindex {
		section, err := GetSectionHeader(buffer, header, 0)
		if err != nil {
			return 0
		}
		return uint64(section.Link)
	}
	return uint64(header.SectionNameStringTableIndex)
}

// isNullSection reports whether section looks like the well-formed null
// section ELF requires at index 0 when e_shnum overflows into sh_size.
// sh_size and sh_link are deliberately excluded: sh_size carries the real
// count in the escape case, and sh_link carries the real section name
// string table index in the SHN_XINDEX escape.
func isNullSection(section *SectionRecord) bool {
	return section.NameOffset == 0 &&
		section.Type == SectionTypeNull &&
		section.Flags == 0 &&
		section.Addr == 0 &&
		section.Offset == 0 &&
		section.Info == 0 &&
		section.Addralign == 0 &&
		section.Entsize == 0
}

// readBoundedCString returns the NUL-terminated string starting at
// offset, and false if offset is out of range or no NUL terminator
// exists before the end of buffer.
func readBoundedCString(buffer []byte, offset uint64) (string, bool) {
	size := uint64(len(buffer))
	if offset >= size {
		return "", false
	}
	end := bytes.IndexByte(buffer[offset:], 0)
	if end < 0 {
		return "", false
	}
	return string(buffer[offset : offset+uint64(end)]), true
}
