// Based on linux's man page, elf.h, golang's debug/elf package,
// and the elf 1.2 spec.
package elf

import (
	"fmt"
)

var (
	// EI_MAG0 - EI_MAG3
	IdentifierMagic = []byte{
		0x7f, // ELFMAG0
		'E',  // ELFMAG1
		'L',  // ELFMAG2
		'F',  // ELFMAG3
	}
)

const (
	// SHN_LORESERVE .. SHN_HIRESERVE
	SectionIndexLoreserve = 0xff00
	SectionIndexLoproc    = 0xff00 // SHN_LOPROC
	SectionIndexHiproc    = 0xff1f // SHN_HIPROC
	SectionIndexLoos      = 0xff20 // SHN_LOOS
	SectionIndexHios      = 0xff3f // SHN_HIOS
	SectionIndexAbsolute  = 0xfff1 // SHN_ABS
	SectionIndexCommon    = 0xfff2 // SHN_COMMON
	SectionIndexXindex    = 0xffff // SHN_XINDEX
	SectionIndexHireserve = 0xffff // SHN_HIRESERVE

	SectionIndexUndefined = 0 // SHN_UNDEF

	IdentifierVersion = 1 // EI_CURRENT
	ABIVersion        = 0
	FormatVersion     = 1 // EV_CURRENT

	ElfIdentifierSize           = 16
	Elf32HeaderSize             = 52
	Elf64HeaderSize             = 64
	Elf32SectionHeaderEntrySize = 40
	Elf64SectionHeaderEntrySize = 64
	Elf32ProgramHeaderEntrySize = 32
	Elf64ProgramHeaderEntrySize = 56
	Elf32SymbolEntrySize        = 16
	Elf64SymbolEntrySize        = 24

	SectionStringTableName = ".shstrtab"
	StringTableName        = ".strtab"
	SymbolTableName        = ".symtab"
)

// EI_CLASS
type Class byte

const (
	ClassNone = Class(0) // ELFCLASSNONE
	Class32   = Class(1) // ELFCLASS32
	Class64   = Class(2) // ELFCLASS64
)

func (class Class) String() string {
	switch class {
	case ClassNone:
		return "ClassNone"
	case Class32:
		return "Class32"
	case Class64:
		return "Class64"
	default:
		return fmt.Sprintf("ClassUnknown(%d)", byte(class))
	}
}

// EI_DATA
type DataEncoding byte

const (
	DataEncodingNone                       = DataEncoding(0) // ELFDATANONE
	DataEncodingTwosComplementLittleEndian = DataEncoding(1) // ELFDATA2LSB
	DataEncodingTwosComplementBigEndian    = DataEncoding(2) // ELFDATA2MSB
)

func (encoding DataEncoding) String() string {
	switch encoding {
	case DataEncodingNone:
		return "DataEncodingNone"
	case DataEncodingTwosComplementLittleEndian:
		return "TwosComplementLittleEndian"
	case DataEncodingTwosComplementBigEndian:
		return "TwosComplementBigEndian"
	default:
		return fmt.Sprintf("DataEncodingUnknown(%d)", byte(encoding))
	}
}

// EI_OSABI
type OperatingSystemABI byte

const (
	OperatingSystemABIUnixSystemV = OperatingSystemABI(0)  // ELFOSABI_NONE
	OperatingSystemABIHPUX        = OperatingSystemABI(1)  // ELFOSABI_HPUX
	OperatingSystemABINetBSD      = OperatingSystemABI(2)  // ELFOSABI_NETBSD
	OperatingSystemABILinux       = OperatingSystemABI(3)  // ELFOSABI_LINUX
	OperatingSystemABISolaris     = OperatingSystemABI(6)  // ELFOSABI_SOLARIS
	OperatingSystemABIAIX         = OperatingSystemABI(7)  // ELFOSABI_AIX
	OperatingSystemABIIRIX        = OperatingSystemABI(8)  // ELFOSABI_IRIX
	OperatingSystemABIFreeBSD     = OperatingSystemABI(9)  // ELFOSABI_FREEBSD
	OperatingSystemABITru64       = OperatingSystemABI(10) // ELFOSABI_TRU64
	OperatingSystemABIModesto     = OperatingSystemABI(11) // ELFOSABI_MODESTO
	OperatingSystemABIOpenBSD     = OperatingSystemABI(12) // ELFOSABI_OPENBSD
	OperatingSystemABIOpenVMS     = OperatingSystemABI(13) // ELFOSABI_OPENVMS
	OperatingSystemABINSK         = OperatingSystemABI(14) // ELFOSABI_NSK

	// Start of the reserved processor-specific range (ELFOSABI_LOARCH);
	// IsValidOSABI accepts values up to 255 within it.
	OperatingSystemABILoArch = OperatingSystemABI(64)
)

func (osAbi OperatingSystemABI) String() string {
	switch osAbi {
	case OperatingSystemABIUnixSystemV:
		return "UnixSystemV"
	case OperatingSystemABIHPUX:
		return "HPUX"
	case OperatingSystemABINetBSD:
		return "NetBSD"
	case OperatingSystemABILinux:
		return "Linux"
	case OperatingSystemABISolaris:
		return "Solaris"
	case OperatingSystemABIAIX:
		return "AIX"
	case OperatingSystemABIIRIX:
		return "IRIX"
	case OperatingSystemABIFreeBSD:
		return "FreeBSD"
	case OperatingSystemABITru64:
		return "Tru64"
	case OperatingSystemABIModesto:
		return "Modesto"
	case OperatingSystemABIOpenBSD:
		return "OpenBSD"
	case OperatingSystemABIOpenVMS:
		return "OpenVMS"
	case OperatingSystemABINSK:
		return "NSK"
	default:
		return fmt.Sprintf("OperatingSystemABIUnknown(%d)", byte(osAbi))
	}
}

// e_type
type FileType uint16

const (
	FileTypeNone         = FileType(0) // ET_NONE
	FileTypeRelocatable  = FileType(1) // ET_REL
	FileTypeExecutable   = FileType(2) // ET_EXEC
	FileTypeSharedObject = FileType(3) // ET_DYN
	FileTypeCore         = FileType(4) // ET_CORE

	// Inclusive range, OS specific
	FileTypeLoOS = FileType(0xfe00) // ET_LOOS
	FileTypeHiOS = FileType(0xfeff) // ET_HIOS

	// Inclusive range, processor specific
	FileTypeLoProc = FileType(0xff00) // ET_LOPROC
	FileTypeHiProc = FileType(0xffff) // ET_HIPROC
)

func (ft FileType) String() string {
	switch ft {
	case FileTypeNone:
		return "FileTypeNone"
	case FileTypeRelocatable:
		return "Relocatable"
	case FileTypeExecutable:
		return "Executable"
	case FileTypeSharedObject:
		return "SharedObject"
	case FileTypeCore:
		return "Core"
	default:
		return fmt.Sprintf("FileTypeUnknown(%d)", uint16(ft))
	}
}

// e_machine. debug/elf.Machine carries a longer list; this keeps the
// entries the original C enum names plus the handful the pack's
// binaries are actually built for.
type MachineArchitecture uint16

const (
	MachineArchitectureNone        = MachineArchitecture(0)
	MachineArchitectureM32         = MachineArchitecture(1)
	MachineArchitectureSPARC       = MachineArchitecture(2)
	MachineArchitecture386         = MachineArchitecture(3)
	MachineArchitecture68K         = MachineArchitecture(4)
	MachineArchitecture88K         = MachineArchitecture(5)
	MachineArchitecture860         = MachineArchitecture(7)
	MachineArchitectureMIPS        = MachineArchitecture(8)
	MachineArchitectureS370        = MachineArchitecture(9)
	MachineArchitectureMIPSRS3LE   = MachineArchitecture(10)
	MachineArchitecturePARISC      = MachineArchitecture(15)
	MachineArchitectureVPP500      = MachineArchitecture(17)
	MachineArchitectureSPARC32Plus = MachineArchitecture(18)
	MachineArchitecture960         = MachineArchitecture(19)
	MachineArchitecturePPC         = MachineArchitecture(20)
	MachineArchitecturePPC64       = MachineArchitecture(21)
	MachineArchitectureS390        = MachineArchitecture(22)
	MachineArchitectureV800        = MachineArchitecture(36)
	MachineArchitectureFR20        = MachineArchitecture(37)
	MachineArchitectureRH32        = MachineArchitecture(38)
	MachineArchitectureRCE         = MachineArchitecture(39)
	MachineArchitectureARM         = MachineArchitecture(40)
	MachineArchitectureAlpha       = MachineArchitecture(41)
	MachineArchitectureSH          = MachineArchitecture(42)
	MachineArchitectureSPARCV9     = MachineArchitecture(43)
	MachineArchitectureTricore     = MachineArchitecture(44)
	MachineArchitectureARC         = MachineArchitecture(45)
	MachineArchitectureH8300       = MachineArchitecture(46)
	MachineArchitectureH8300H      = MachineArchitecture(47)
	MachineArchitectureH8S         = MachineArchitecture(48)
	MachineArchitectureH8500       = MachineArchitecture(49)
	MachineArchitectureIA64        = MachineArchitecture(50)
	MachineArchitectureMIPSX       = MachineArchitecture(51)
	MachineArchitectureColdfire    = MachineArchitecture(52)
	MachineArchitecture68HC12      = MachineArchitecture(53)
	MachineArchitectureMMA         = MachineArchitecture(54)
	MachineArchitecturePCP         = MachineArchitecture(55)
	MachineArchitectureNCPU        = MachineArchitecture(56)
	MachineArchitectureNDR1        = MachineArchitecture(57)
	MachineArchitectureStarcore    = MachineArchitecture(58)
	MachineArchitectureME16        = MachineArchitecture(59)
	MachineArchitectureST100       = MachineArchitecture(60)
	MachineArchitectureTinyJ       = MachineArchitecture(61)
	MachineArchitectureX86_64      = MachineArchitecture(62) // EM_X86_64
	MachineArchitecturePDSP        = MachineArchitecture(63)
	MachineArchitecturePDP10       = MachineArchitecture(64)
	MachineArchitecturePDP11       = MachineArchitecture(65)
	MachineArchitectureFX66        = MachineArchitecture(66)
	MachineArchitectureST9Plus     = MachineArchitecture(67)
	MachineArchitectureST7         = MachineArchitecture(68)
	MachineArchitecture68HC16      = MachineArchitecture(69)
	MachineArchitecture68HC11      = MachineArchitecture(70)
	MachineArchitecture68HC08      = MachineArchitecture(71)
	MachineArchitecture68HC05      = MachineArchitecture(72)
	MachineArchitectureSVX         = MachineArchitecture(73)
	MachineArchitectureST19        = MachineArchitecture(74)
	MachineArchitectureVAX         = MachineArchitecture(75)
	MachineArchitectureCRIS        = MachineArchitecture(76)
	MachineArchitectureJavelin     = MachineArchitecture(77)
	MachineArchitectureFirepath    = MachineArchitecture(78)
	MachineArchitectureZSP         = MachineArchitecture(79)
	MachineArchitectureMMIX        = MachineArchitecture(80)
	MachineArchitectureHUANY       = MachineArchitecture(81)
	MachineArchitecturePrism       = MachineArchitecture(82)
	MachineArchitectureAVR         = MachineArchitecture(83)
	MachineArchitectureFR30        = MachineArchitecture(84)
	MachineArchitectureD10V        = MachineArchitecture(85)
	MachineArchitectureD30V        = MachineArchitecture(86)
	MachineArchitectureV850        = MachineArchitecture(87)
	MachineArchitectureM32R        = MachineArchitecture(88)
	MachineArchitectureMN10300     = MachineArchitecture(89)
	MachineArchitectureMN10200     = MachineArchitecture(90)
	MachineArchitecturePJ          = MachineArchitecture(91)
	MachineArchitectureOpenRISC    = MachineArchitecture(92)
	MachineArchitectureARCA5       = MachineArchitecture(93)
	MachineArchitectureXtensa      = MachineArchitecture(94)
	MachineArchitectureVideoCore   = MachineArchitecture(95)
	MachineArchitectureTMMGPP      = MachineArchitecture(96)
	MachineArchitectureNS32K       = MachineArchitecture(97)
	MachineArchitectureTPC         = MachineArchitecture(98)
	MachineArchitectureSNP1K       = MachineArchitecture(99)
	MachineArchitectureST200       = MachineArchitecture(100)
)

var machineNames = map[MachineArchitecture]string{
	MachineArchitectureNone:        "MachineArchitectureNone",
	MachineArchitectureM32:         "M32",
	MachineArchitectureSPARC:       "SPARC",
	MachineArchitecture386:         "386",
	MachineArchitecture68K:         "68K",
	MachineArchitecture88K:         "88K",
	MachineArchitecture860:         "860",
	MachineArchitectureMIPS:        "MIPS",
	MachineArchitectureS370:        "S370",
	MachineArchitectureMIPSRS3LE:   "MIPS_RS3_LE",
	MachineArchitecturePARISC:      "PARISC",
	MachineArchitectureVPP500:      "VPP500",
	MachineArchitectureSPARC32Plus: "SPARC32PLUS",
	MachineArchitecture960:         "960",
	MachineArchitecturePPC:         "PPC",
	MachineArchitecturePPC64:       "PPC64",
	MachineArchitectureS390:        "S390",
	MachineArchitectureARM:         "ARM",
	MachineArchitectureAlpha:       "Alpha",
	MachineArchitectureSH:          "SH",
	MachineArchitectureSPARCV9:     "SPARCV9",
	MachineArchitectureIA64:        "IA_64",
	MachineArchitectureX86_64:      "x86-64",
	MachineArchitectureAVR:         "AVR",
	MachineArchitectureXtensa:      "Xtensa",
}

func (arch MachineArchitecture) String() string {
	if name, ok := machineNames[arch]; ok {
		return name
	}
	return fmt.Sprintf("MachineArchitectureUnknown(%d)", uint16(arch))
}

type ProgramType uint32

const (
	ProgramNull            = ProgramType(0) // PT_NULL
	ProgramLoadable        = ProgramType(1) // PT_LOAD
	ProgramDynamicLinking  = ProgramType(2) // PT_DYNAMIC
	ProgramInterpreterPath = ProgramType(3) // PT_INTERP
	ProgramNote            = ProgramType(4) // PT_NOTE
	ProgramShlib           = ProgramType(5) // PT_SHLIB
	ProgramHeaderInfo      = ProgramType(6) // PT_PHDR
	ProgramTLS             = ProgramType(7) // PT_TLS

	// Inclusive range, OS specific
	ProgramLoOS = ProgramType(0x60000000) // PT_LOOS
	ProgramHiOS = ProgramType(0x6fffffff) // PT_HIOS

	// Inclusive range, processor specific
	ProgramLoProc = ProgramType(0x70000000) // PT_LOPROC
	ProgramHiProc = ProgramType(0x7fffffff) // PT_HIPROC

	ProgramGNUStack = ProgramType(0x6474e551) // PT_GNU_STACK, within the OS range
)

func (segType ProgramType) String() string {
	switch segType {
	case ProgramNull:
		return "ProgramNull"
	case ProgramLoadable:
		return "Loadable"
	case ProgramDynamicLinking:
		return "DynamicLinking"
	case ProgramInterpreterPath:
		return "InterpreterPath"
	case ProgramNote:
		return "Note"
	case ProgramShlib:
		return "Shlib"
	case ProgramHeaderInfo:
		return "HeaderInfo"
	case ProgramTLS:
		return "TLS"
	case ProgramGNUStack:
		return "GNUStack"
	default:
		return fmt.Sprintf("ProgramUnknown(%d)", uint32(segType))
	}
}

type ProgramFlags uint32

const (
	ProgramFlagExecutableBit = ProgramFlags(0x1) // PF_X
	ProgramFlagWritableBit   = ProgramFlags(0x2) // PF_W
	ProgramFlagReadableBit   = ProgramFlags(0x4) // PF_R

	ProgramFlagMaskOS   = ProgramFlags(0x0ff00000) // PF_MASKOS
	ProgramFlagMaskProc = ProgramFlags(0xf0000000) // PF_MASKPROC
)

func (bits ProgramFlags) String() string {
	if bits > 7 {
		return fmt.Sprintf("%#x", uint32(bits))
	}

	rwx := []byte{'-', '-', '-'}
	if bits&ProgramFlagReadableBit != 0 {
		rwx[0] = 'r'
	}

	if bits&ProgramFlagWritableBit != 0 {
		rwx[1] = 'w'
	}

	if bits&ProgramFlagExecutableBit != 0 {
		rwx[2] = 'x'
	}

	return string(rwx)
}

type SectionType uint32

const (
	SectionTypeNull                  = SectionType(0)  // SHT_NULL
	SectionTypeProgramDefinedInfo    = SectionType(1)  // SHT_PROGBITS
	SectionTypeSymbolTable           = SectionType(2)  // SHT_SYMTAB
	SectionTypeStringTable           = SectionType(3)  // SHT_STRTAB
	SectionTypeRelocationWithAddends = SectionType(4)  // SHT_RELA
	SectionTypeSymbolHashTable       = SectionType(5)  // SHT_HASH
	SectionTypeDynamic               = SectionType(6)  // SHT_DYNAMIC
	SectionTypeNote                  = SectionType(7)  // SHT_NOTE
	SectionTypeNoSpace               = SectionType(8)  // SHT_NOBITS
	SectionTypeRelocationNoAddends   = SectionType(9)  // SHT_REL
	SectionTypeShlib                 = SectionType(10) // SHT_SHLIB
	SectionTypeDynamicSymbolTable    = SectionType(11) // SHT_DYNSYM
	SectionTypeInitArray             = SectionType(14) // SHT_INIT_ARRAY
	SectionTypeFiniArray             = SectionType(15) // SHT_FINI_ARRAY
	SectionTypePreinitArray          = SectionType(16) // SHT_PREINIT_ARRAY
	SectionTypeGroup                 = SectionType(17) // SHT_GROUP
	SectionTypeSymtabShndx           = SectionType(18) // SHT_SYMTAB_SHNDX

	// Inclusive range, OS specific
	SectionTypeLoOS = SectionType(0x60000000) // SHT_LOOS
	SectionTypeHiOS = SectionType(0x6fffffff) // SHT_HIOS

	// Inclusive range, processor specific
	SectionTypeLoProc = SectionType(0x70000000) // SHT_LOPROC
	SectionTypeHiProc = SectionType(0x7fffffff) // SHT_HIPROC

	// Inclusive range, application specific
	SectionTypeLoUser = SectionType(0x80000000) // SHT_LOUSER
	SectionTypeHiUser = SectionType(0xffffffff) // SHT_HIUSER
)

func (stype SectionType) String() string {
	switch stype {
	case SectionTypeNull:
		return "SectionTypeNull"
	case SectionTypeProgramDefinedInfo:
		return "ProgramDefinedInfo"
	case SectionTypeSymbolTable:
		return "SymbolTable"
	case SectionTypeStringTable:
		return "StringTable"
	case SectionTypeRelocationWithAddends:
		return "RelocationWithAddends"
	case SectionTypeSymbolHashTable:
		return "SymbolHashTable"
	case SectionTypeDynamic:
		return "Dynamic"
	case SectionTypeNote:
		return "Note"
	case SectionTypeNoSpace:
		return "NoSpace"
	case SectionTypeRelocationNoAddends:
		return "RelocationNoAddends"
	case SectionTypeShlib:
		return "Shlib"
	case SectionTypeDynamicSymbolTable:
		return "DynamicSymbolTable"
	case SectionTypeInitArray:
		return "InitArray"
	case SectionTypeFiniArray:
		return "FiniArray"
	case SectionTypePreinitArray:
		return "PreinitArray"
	case SectionTypeGroup:
		return "Group"
	case SectionTypeSymtabShndx:
		return "SymtabShndx"
	default:
		return fmt.Sprintf("SectionTypeUnknown(%d)", uint32(stype))
	}
}

type SectionFlags uint64

const (
	SectionContainsWritableData         = SectionFlags(0x1)   // SHF_WRITE
	SectionOccupiesMemory               = SectionFlags(0x2)   // SHF_ALLOC
	SectionContainsInstructions         = SectionFlags(0x4)   // SHF_EXECINSTR
	SectionMayBeMerged                  = SectionFlags(0x10)  // SHF_MERGE
	SectionContainsStrings              = SectionFlags(0x20)  // SHF_STRINGS
	SectionInfoHoldsSectionIndex        = SectionFlags(0x40)  // SHF_INFO_LINK
	SectionRequiresSpecialOrdering      = SectionFlags(0x80)  // SHF_LINK_ORDER
	SectionRequiresOsSpecificProcessing = SectionFlags(0x100) // SHF_OS_NONCONFORMING
	SectionIsGroupMember                = SectionFlags(0x200) // SHF_GROUP
	SectionContainsTLSData              = SectionFlags(0x400) // SHF_TLS

	SectionMaskOS   = SectionFlags(0x0ff00000) // SHF_MASKOS
	SectionMaskProc = SectionFlags(0xf0000000) // SHF_MASKPROC
)

func (flags SectionFlags) String() string {
	result := make([]byte, 10)
	for i := range result {
		result[i] = '-'
	}

	if flags&SectionContainsWritableData != 0 {
		result[0] = 'w'
	}
	if flags&SectionOccupiesMemory != 0 {
		result[1] = 'a'
	}
	if flags&SectionContainsInstructions != 0 {
		result[2] = 'x'
	}
	if flags&SectionMayBeMerged != 0 {
		result[3] = 'm'
	}
	if flags&SectionContainsStrings != 0 {
		result[4] = 's'
	}
	if flags&SectionInfoHoldsSectionIndex != 0 {
		result[5] = 'i'
	}
	if flags&SectionRequiresSpecialOrdering != 0 {
		result[6] = 'l'
	}
	if flags&SectionRequiresOsSpecificProcessing != 0 {
		result[7] = 'o'
	}
	if flags&SectionIsGroupMember != 0 {
		result[8] = 'g'
	}
	if flags&SectionContainsTLSData != 0 {
		result[9] = 't'
	}

	return string(result)
}

// The bottom 4 bits of st_info
type SymbolType byte

func SymbolInfoToType(info byte) SymbolType {
	return SymbolType(info & 0xf)
}

const (
	SymbolTypeNone                     = SymbolType(0) // STT_NOTYPE
	SymbolTypeObject                   = SymbolType(1) // STT_OBJECT
	SymbolTypeFunction                 = SymbolType(2) // STT_FUNC
	SymbolTypeSection                  = SymbolType(3) // STT_SECTION
	SymbolTypeSourceFile               = SymbolType(4) // STT_FILE
	SymbolTypeUninitializedCommonBlock = SymbolType(5) // STT_COMMON
	SymbolTypeTLSObject                = SymbolType(6) // STT_TLS

	// Inclusive range, OS specific
	SymbolTypeLoOS = SymbolType(10) // STT_LOOS
	SymbolTypeHiOS = SymbolType(12) // STT_HIOS

	// Inclusive range, processor specific
	SymbolTypeLoProc = SymbolType(13) // STT_LOPROC
	SymbolTypeHiProc = SymbolType(15) // STT_HIPROC
)

func (st SymbolType) String() string {
	switch st {
	case SymbolTypeNone:
		return "NoType"
	case SymbolTypeObject:
		return "Object"
	case SymbolTypeFunction:
		return "Function"
	case SymbolTypeSection:
		return "Section"
	case SymbolTypeSourceFile:
		return "SourceFile"
	case SymbolTypeUninitializedCommonBlock:
		return "UninitializedCommonBlock"
	case SymbolTypeTLSObject:
		return "TLSObject"
	default:
		return fmt.Sprintf("SymbolTypeUnknown(%d)", byte(st))
	}
}

// The top 4 bits of st_info
type SymbolBinding byte

func SymbolInfoToBinding(info byte) SymbolBinding {
	return SymbolBinding(info >> 4)
}

const (
	SymbolBindingLocal  = SymbolBinding(0) // STB_LOCAL
	SymbolBindingGlobal = SymbolBinding(1) // STB_GLOBAL
	SymbolBindingWeak   = SymbolBinding(2) // STB_WEAK

	// Inclusive range, OS specific
	SymbolBindingLoOS = SymbolBinding(10) // STB_LOOS
	SymbolBindingHiOS = SymbolBinding(12) // STB_HIOS

	// Inclusive range, processor specific
	SymbolBindingLoProc = SymbolBinding(13) // STB_LOPROC
	SymbolBindingHiProc = SymbolBinding(15) // STB_HIPROC
)

func (sb SymbolBinding) String() string {
	switch sb {
	case SymbolBindingLocal:
		return "Local"
	case SymbolBindingGlobal:
		return "Global"
	case SymbolBindingWeak:
		return "Weak"
	default:
		return fmt.Sprintf("SymbolBindingUnknown(%d)", byte(sb))
	}
}

// The bottom 2 bits of st_other
type SymbolVisibility byte

func SymbolOtherToVisibility(other byte) SymbolVisibility {
	return SymbolVisibility(other & 0x3)
}

const (
	SymbolVisibilityDefault   = SymbolVisibility(0) // STV_DEFAULT
	SymbolVisibilityInternal  = SymbolVisibility(1) // STV_INTERNAL
	SymbolVisibilityHidden    = SymbolVisibility(2) // STV_HIDDEN
	SymbolVisibilityProtected = SymbolVisibility(3) // STV_PROTECTED
)

func (vis SymbolVisibility) String() string {
	switch vis {
	case SymbolVisibilityDefault:
		return "Default"
	case SymbolVisibilityInternal:
		return "Internal"
	case SymbolVisibilityHidden:
		return "Hidden"
	case SymbolVisibilityProtected:
		return "Protected"
	default:
		return fmt.Sprintf("SymbolVisibilityUnknown(%d)", byte(vis))
	}
}

// ParsedHeader is the descriptor returned by Parse. Fields whose on-disk
// width is identical in both Elf32_Ehdr and Elf64_Ehdr (e_flags,
// e_ehsize, e_phentsize, e_phnum, e_shentsize, e_shnum, e_shstrndx) keep
// their natural width; fields that widen between classes (e_entry,
// e_phoff, e_shoff) and all derived metadata are uint64.
//
// A ParsedHeader holds no reference to the buffer it was parsed from;
// every accessor takes both the buffer and the header explicitly.
type ParsedHeader struct {
	Class      Class
	Data       DataEncoding
	Version    byte
	OSABI      OperatingSystemABI
	ABIVersion byte

	Type                        FileType
	Machine                     MachineArchitecture
	FormatVersion               uint32
	Entry                       uint64
	ProgramHeaderOffset         uint64
	SectionHeaderOffset         uint64
	Flags                       uint32
	HeaderSize                  uint16
	ProgramHeaderEntrySize      uint16
	ProgramHeaderCount          uint16
	SectionHeaderEntrySize      uint16
	SectionHeaderCount          uint16
	SectionNameStringTableIndex uint16

	// Size of the buffer the header was parsed from, in bytes.
	Size uint64

	// Derived fields, resolved once during Parse.
	TrueSectionHeaderCount          uint64
	TrueSectionNameStringTableIndex uint64
	StringTableOffset               uint64
	SymbolTableOffset               uint64
	SymbolEntrySize                 uint64
	SymbolCount                     uint64
	SymbolStringTableOffset         uint64
}

// SectionRecord is the decoded shape of a section header. sh_link and
// sh_info are uint32 in both Elf32_Shdr and Elf64_Shdr, so they never
// widen; sh_addr/sh_offset/sh_size/sh_addralign/sh_entsize do.
type SectionRecord struct {
	NameOffset uint32 // sh_name
	Type       SectionType
	Flags      SectionFlags
	Addr       uint64
	Offset     uint64
	Size       uint64
	Link       uint32
	Info       uint32
	Addralign  uint64
	Entsize    uint64

	Name  string
	Index uint64
}

// SymbolRecord is the decoded shape of a symbol table entry. st_name,
// st_info, st_other, and st_shndx never widen between Elf32_Sym and
// Elf64_Sym; only st_value/st_size do.
type SymbolRecord struct {
	NameOffset uint32 // st_name
	Value      uint64
	Size       uint64
	Info       byte
	Other      byte
	Shndx      uint16

	Bind       SymbolBinding
	Type       SymbolType
	Visibility SymbolVisibility

	Name  string
	Index uint64
}

// ProgramHeaderRecord is the decoded shape of a program header entry.
// p_type and p_flags never widen; every offset/address/size field does.
type ProgramHeaderRecord struct {
	Type   ProgramType
	Offset uint64
	Vaddr  uint64
	Paddr  uint64
	Filesz uint64
	Memsz  uint64
	Flags  ProgramFlags
	Align  uint64

	Index uint64
}
