package elf

func appendU16LE(buf []byte, v uint16) []byte {
	return append(buf, byte(v), byte(v>>8))
}

func appendU32LE(buf []byte, v uint32) []byte {
	return append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendU64LE(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

func appendU16BE(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

func appendU32BE(buf []byte, v uint32) []byte {
	return append(buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func appendU64BE(buf []byte, v uint64) []byte {
	return append(buf,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

const (
	fixtureShstrtabOffset = 440
	fixtureShstrtabSize   = 33
	fixtureTextOffset     = 473
	fixtureTextSize       = 16
	fixtureSymtabOffset   = 489
	fixtureSymtabSize     = 72
	fixtureStrtabOffset   = 561
	fixtureStrtabSize     = 13
	fixtureTotalSize      = 574

	fixtureShstrtabSectionIndex = 1
	fixtureTextSectionIndex     = 2
	fixtureSymtabSectionIndex   = 3
	fixtureStrtabSectionIndex   = 4
)

// buildElf64Fixture constructs a complete, well-formed little-endian
// 64-bit ELF image in memory: one PT_LOAD segment, five section headers
// (null, .shstrtab, .text, .symtab, .strtab), and three symbol table
// entries (the mandatory null entry, "_start", "main").
func buildElf64Fixture() []byte {
	buf := make([]byte, 0, fixtureTotalSize)

	// e_ident
	buf = append(buf, IdentifierMagic...)
	buf = append(buf, byte(Class64))
	buf = append(buf, byte(DataEncodingTwosComplementLittleEndian))
	buf = append(buf, byte(IdentifierVersion))
	buf = append(buf, byte(OperatingSystemABILinux))
	buf = append(buf, 0) // abiversion
	buf = append(buf, make([]byte, 7)...)

	buf = appendU16LE(buf, uint16(FileTypeExecutable))
	buf = appendU16LE(buf, uint16(MachineArchitectureX86_64))
	buf = appendU32LE(buf, FormatVersion)
	buf = appendU64LE(buf, 0x400000)            // e_entry
	buf = appendU64LE(buf, 64)                  // e_phoff
	buf = appendU64LE(buf, 120)                 // e_shoff
	buf = appendU32LE(buf, 0)                   // e_flags
	buf = appendU16LE(buf, Elf64HeaderSize)      // e_ehsize
	buf = appendU16LE(buf, Elf64ProgramHeaderEntrySize)
	buf = appendU16LE(buf, 1) // e_phnum
	buf = appendU16LE(buf, Elf64SectionHeaderEntrySize)
	buf = appendU16LE(buf, 5)                          // e_shnum
	buf = appendU16LE(buf, fixtureShstrtabSectionIndex) // e_shstrndx

	// program header table: one PT_LOAD segment covering .text, with a
	// memory size larger than its file size to exercise the zero-fill tail.
	buf = appendU32LE(buf, uint32(ProgramLoadable))
	buf = appendU32LE(buf, uint32(ProgramFlagReadableBit|ProgramFlagExecutableBit))
	buf = appendU64LE(buf, fixtureTextOffset)
	buf = appendU64LE(buf, 0x400000)
	buf = appendU64LE(buf, 0x400000)
	buf = appendU64LE(buf, fixtureTextSize) // p_filesz
	buf = appendU64LE(buf, 32)              // p_memsz > p_filesz
	buf = appendU64LE(buf, 0x1000)

	// section header table
	appendShdr := func(name uint32, typ SectionType, flags SectionFlags, addr, offset, size uint64, link, info uint32, align, entsize uint64) {
		buf = appendU32LE(buf, name)
		buf = appendU32LE(buf, uint32(typ))
		buf = appendU64LE(buf, uint64(flags))
		buf = appendU64LE(buf, addr)
		buf = appendU64LE(buf, offset)
		buf = appendU64LE(buf, size)
		buf = appendU32LE(buf, link)
		buf = appendU32LE(buf, info)
		buf = appendU64LE(buf, align)
		buf = appendU64LE(buf, entsize)
	}

	appendShdr(0, SectionTypeNull, 0, 0, 0, 0, 0, 0, 0, 0)
	appendShdr(1, SectionTypeStringTable, 0, 0, fixtureShstrtabOffset, fixtureShstrtabSize, 0, 0, 1, 0)
	appendShdr(11, SectionTypeProgramDefinedInfo, SectionOccupiesMemory|SectionContainsInstructions, 0x400000, fixtureTextOffset, fixtureTextSize, 0, 0, 16, 0)
	appendShdr(17, SectionTypeSymbolTable, 0, 0, fixtureSymtabOffset, fixtureSymtabSize, fixtureStrtabSectionIndex, 1, 8, 24)
	appendShdr(25, SectionTypeStringTable, 0, 0, fixtureStrtabOffset, fixtureStrtabSize, 0, 0, 1, 0)

	// .shstrtab contents: \0.shstrtab\0.text\0.symtab\0.strtab\0
	buf = append(buf, 0)
	buf = append(buf, ".shstrtab\x00"...)
	buf = append(buf, ".text\x00"...)
	buf = append(buf, ".symtab\x00"...)
	buf = append(buf, ".strtab\x00"...)

	// .text contents
	buf = append(buf, 0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF,
		0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF)

	// .symtab contents: null symbol, _start, main
	appendSym := func(name uint32, info, other byte, shndx uint16, value, size uint64) {
		buf = appendU32LE(buf, name)
		buf = append(buf, info, other)
		buf = appendU16LE(buf, shndx)
		buf = appendU64LE(buf, value)
		buf = appendU64LE(buf, size)
	}
	appendSym(0, 0, 0, 0, 0, 0)
	appendSym(1, (uint8(SymbolBindingGlobal)<<4)|uint8(SymbolTypeFunction), 0, fixtureTextSectionIndex, 0x400000, 16)
	appendSym(8, (uint8(SymbolBindingGlobal)<<4)|uint8(SymbolTypeFunction), 0, fixtureTextSectionIndex, 0x400010, 8)

	// .strtab contents: \0_start\0main\0
	buf = append(buf, 0)
	buf = append(buf, "_start\x00"...)
	buf = append(buf, "main\x00"...)

	return buf
}
