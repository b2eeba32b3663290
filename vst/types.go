package vst

// EffectMagic is the value of AEffect.Magic for a valid plugin ("VstP").
const EffectMagic int32 = 0x56737450

// Fixed capacities of the byte arrays embedded in descriptor structs.
// These are ABI constants; resizing any of them breaks binary
// compatibility with the plugin.
const (
	IOPropertiesSize  = 128 // opaque pin-properties block
	MidiKeyNameSize   = 80  // opaque key-name block
	LabelLen          = 64  // VstParameterProperties.label
	ShortLabelLen     = 8   // VstParameterProperties.shortLabel
	CategoryLabelLen  = 24  // VstParameterProperties.categoryLabel
	FutureLen         = 16  // VstParameterProperties.future
)

// AEffect is a snapshot of the plugin's static capability block. Only
// the scalar fields are carried; the pointer fields of the real struct
// (dispatcher, process, editor, user data) are meaningless outside the
// owning process and are left untouched when a snapshot is applied.
type AEffect struct {
	Magic        int32
	NumPrograms  int32
	NumParams    int32
	NumInputs    int32
	NumOutputs   int32
	Flags        int32
	InitialDelay int32
	Empty3a      int32
	Empty3b      int32
	UnknownFloat float32
	UniqueID     int32
	Version      int32
}

// AEffect flag bits.
const (
	EffFlagsHasEditor     int32 = 1 << 0
	EffFlagsCanReplacing  int32 = 1 << 4
	EffFlagsProgramChunks int32 = 1 << 5
	EffFlagsIsSynth       int32 = 1 << 8
	EffFlagsNoSoundInStop int32 = 1 << 9
)

// IOProperties mirrors the pin-properties block a plugin fills in for
// effGetInputProperties/effGetOutputProperties. The bridge treats it as
// opaque bytes; only the plugin and host interpret the contents.
type IOProperties struct {
	Data [IOPropertiesSize]byte
}

// MidiKeyName mirrors the key-name block for effGetMidiKeyName, opaque
// to the bridge.
type MidiKeyName struct {
	Data [MidiKeyNameSize]byte
}

// ParameterProperties mirrors VstParameterProperties, the extended
// parameter metadata a plugin returns for effGetParameterProperties.
type ParameterProperties struct {
	StepFloat               float32
	SmallStepFloat          float32
	LargeStepFloat          float32
	Label                   [LabelLen]byte
	Flags                   int32
	MinInteger              int32
	MaxInteger              int32
	StepInteger             int32
	LargeStepInteger        int32
	ShortLabel              [ShortLabelLen]byte
	DisplayIndex            int16
	Category                int16
	NumParametersInCategory int16
	Reserved                int16
	CategoryLabel           [CategoryLabelLen]byte
	Future                  [FutureLen]byte
}

// Rect is the editor window rectangle returned for effEditGetRect.
type Rect struct {
	Top    int16
	Left   int16
	Right  int16
	Bottom int16
}

// TimeInfo mirrors VstTimeInfo, the transport state the host returns
// for audioMasterGetTime.
type TimeInfo struct {
	SamplePos          float64
	SampleRate         float64
	NanoSeconds        float64
	PpqPos             float64
	Tempo              float64
	BarStartPos        float64
	CycleStartPos      float64
	CycleEndPos        float64
	TimeSigNumerator   int32
	TimeSigDenominator int32
	Empty3             [3]int32
	Flags              int32
}

// TimeInfo flag bits.
const (
	TransportChanged     int32 = 1 << 0
	TransportPlaying     int32 = 1 << 1
	TransportCycleActive int32 = 1 << 2
	TransportRecording   int32 = 1 << 3
	TempoValid           int32 = 1 << 10
	TimeSigValid         int32 = 1 << 13
)
