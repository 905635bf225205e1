package elf

// The readers below decode one on-disk struct out of a byte slice that
// has already been bounds-checked by the caller to be at least the
// relevant *EntrySize long. Each pair (32-bit/64-bit) is a literal
// byte-offset transcription of elfstructs.h's Elf32_*/Elf64_* layouts.

func readEhdr32(b []byte, isLSB bool) ParsedHeader {
	var h ParsedHeader
	h.Type = FileType(decodeUint16(b[16:18], isLSB))
	h.Machine = MachineArchitecture(decodeUint16(b[18:20], isLSB))
	h.FormatVersion = decodeUint32(b[20:24], isLSB)
	h.Entry = uint64(decodeUint32(b[24:28], isLSB))
	h.ProgramHeaderOffset = uint64(decodeUint32(b[28:32], isLSB))
	h.SectionHeaderOffset = uint64(decodeUint32(b[32:36], isLSB))
	h.Flags = decodeUint32(b[36:40], isLSB)
	h.HeaderSize = decodeUint16(b[40:42], isLSB)
	h.ProgramHeaderEntrySize = decodeUint16(b[42:44], isLSB)
	h.ProgramHeaderCount = decodeUint16(b[44:46], isLSB)
	h.SectionHeaderEntrySize = decodeUint16(b[46:48], isLSB)
	h.SectionHeaderCount = decodeUint16(b[48:50], isLSB)
	h.SectionNameStringTableIndex = decodeUint16(b[50:52], isLSB)
	return h
}

func readEhdr64(b []byte, isLSB bool) ParsedHeader {
	var h ParsedHeader
	h.Type = FileType(decodeUint16(b[16:18], isLSB))
	h.Machine = MachineArchitecture(decodeUint16(b[18:20], isLSB))
	h.FormatVersion = decodeUint32(b[20:24], isLSB)
	h.Entry = decodeUint64(b[24:32], isLSB)
	h.ProgramHeaderOffset = decodeUint64(b[32:40], isLSB)
	h.SectionHeaderOffset = decodeUint64(b[40:48], isLSB)
	h.Flags = decodeUint32(b[48:52], isLSB)
	h.HeaderSize = decodeUint16(b[52:54], isLSB)
	h.ProgramHeaderEntrySize = decodeUint16(b[54:56], isLSB)
	h.ProgramHeaderCount = decodeUint16(b[56:58], isLSB)
	h.SectionHeaderEntrySize = decodeUint16(b[58:60], isLSB)
	h.SectionHeaderCount = decodeUint16(b[60:62], isLSB)
	h.SectionNameStringTableIndex = decodeUint16(b[62:64], isLSB)
	return h
}

func readShdr32(b []byte, isLSB bool) SectionRecord {
	var s SectionRecord
	s.NameOffset = decodeUint32(b[0:4], isLSB)
	s.Type = SectionType(decodeUint32(b[4:8], isLSB))
	s.Flags = SectionFlags(decodeUint32(b[8:12], isLSB))
	s.Addr = uint64(decodeUint32(b[12:16], isLSB))
	s.Offset = uint64(decodeUint32(b[16:20], isLSB))
	s.Size = uint64(decodeUint32(b[20:24], isLSB))
	s.Link = decodeUint32(b[24:28], isLSB)
	s.Info = decodeUint32(b[28:32], isLSB)
	s.Addralign = uint64(decodeUint32(b[32:36], isLSB))
	s.Entsize = uint64(decodeUint32(b[36:40], isLSB))
	return s
}

func readShdr64(b []byte, isLSB bool) SectionRecord {
	var s SectionRecord
	s.NameOffset = decodeUint32(b[0:4], isLSB)
	s.Type = SectionType(decodeUint32(b[4:8], isLSB))
	s.Flags = SectionFlags(decodeUint64(b[8:16], isLSB))
	s.Addr = decodeUint64(b[16:24], isLSB)
	s.Offset = decodeUint64(b[24:32], isLSB)
	s.Size = decodeUint64(b[32:40], isLSB)
	s.Link = decodeUint32(b[40:44], isLSB)
	s.Info = decodeUint32(b[44:48], isLSB)
	s.Addralign = decodeUint64(b[48:56], isLSB)
	s.Entsize = decodeUint64(b[56:64], isLSB)
	return s
}

// readSym32 decodes an Elf32_Sym. Field order on disk differs from
// Elf64_Sym (name, value, size, info, other, shndx rather than name,
// info, other, shndx, value, size).
func readSym32(b []byte, isLSB bool) SymbolRecord {
	var sym SymbolRecord
	sym.NameOffset = decodeUint32(b[0:4], isLSB)
	sym.Value = uint64(decodeUint32(b[4:8], isLSB))
	sym.Size = uint64(decodeUint32(b[8:12], isLSB))
	sym.Info = b[12]
	sym.Other = b[13]
	sym.Shndx = decodeUint16(b[14:16], isLSB)
	sym.Bind = SymbolInfoToBinding(sym.Info)
	sym.Type = SymbolInfoToType(sym.Info)
	sym.Visibility = SymbolOtherToVisibility(sym.Other)
	return sym
}

func readSym64(b []byte, isLSB bool) SymbolRecord {
	var sym SymbolRecord
	sym.NameOffset = decodeUint32(b[0:4], isLSB)
	sym.Info = b[4]
	sym.Other = b[5]
	sym.Shndx = decodeUint16(b[6:8], isLSB)
	sym.Value = decodeUint64(b[8:16], isLSB)
	sym.Size = decodeUint64(b[16:24], isLSB)
	sym.Bind = SymbolInfoToBinding(sym.Info)
	sym.Type = SymbolInfoToType(sym.Info)
	sym.Visibility = SymbolOtherToVisibility(sym.Other)
	return sym
}

// readPhdr32 decodes an Elf32_Phdr. Field order differs from
// Elf64_Phdr (type, offset, vaddr, paddr, filesz, memsz, flags, align
// rather than type, flags, offset, vaddr, paddr, filesz, memsz, align).
func readPhdr32(b []byte, isLSB bool) ProgramHeaderRecord {
	var p ProgramHeaderRecord
	p.Type = ProgramType(decodeUint32(b[0:4], isLSB))
	p.Offset = uint64(decodeUint32(b[4:8], isLSB))
	p.Vaddr = uint64(decodeUint32(b[8:12], isLSB))
	p.Paddr = uint64(decodeUint32(b[12:16], isLSB))
	p.Filesz = uint64(decodeUint32(b[16:20], isLSB))
	p.Memsz = uint64(decodeUint32(b[20:24], isLSB))
	p.Flags = ProgramFlags(decodeUint32(b[24:28], isLSB))
	p.Align = uint64(decodeUint32(b[28:32], isLSB))
	return p
}

func readPhdr64(b []byte, isLSB bool) ProgramHeaderRecord {
	var p ProgramHeaderRecord
	p.Type = ProgramType(decodeUint32(b[0:4], isLSB))
	p.Flags = ProgramFlags(decodeUint32(b[4:8], isLSB))
	p.Offset = decodeUint64(b[8:16], isLSB)
	p.Vaddr = decodeUint64(b[16:24], isLSB)
	p.Paddr = decodeUint64(b[24:32], isLSB)
	p.Filesz = decodeUint64(b[32:40], isLSB)
	p.Memsz = decodeUint64(b[40:48], isLSB)
	p.Align = decodeUint64(b[48:56], isLSB)
	return p
}
