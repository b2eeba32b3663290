package vst

import "fmt"

// Opcode identifies a plugin dispatcher call. The set below covers the
// VST 2.4 opcodes the bridge routinely forwards; unknown opcodes still
// cross the wire, they just render numerically in diagnostics.
type Opcode int32

const (
	EffOpen                   Opcode = 0
	EffClose                  Opcode = 1
	EffSetProgram             Opcode = 2
	EffGetProgram             Opcode = 3
	EffSetProgramName         Opcode = 4
	EffGetProgramName         Opcode = 5
	EffGetParamLabel          Opcode = 6
	EffGetParamDisplay        Opcode = 7
	EffGetParamName           Opcode = 8
	EffSetSampleRate          Opcode = 10
	EffSetBlockSize           Opcode = 11
	EffMainsChanged           Opcode = 12
	EffEditGetRect            Opcode = 13
	EffEditOpen               Opcode = 14
	EffEditClose              Opcode = 15
	EffEditIdle               Opcode = 19
	EffGetChunk               Opcode = 23
	EffSetChunk               Opcode = 24
	EffProcessEvents          Opcode = 25
	EffCanBeAutomated         Opcode = 26
	EffString2Parameter       Opcode = 27
	EffGetProgramNameIndexed  Opcode = 29
	EffGetInputProperties     Opcode = 33
	EffGetOutputProperties    Opcode = 34
	EffGetPlugCategory        Opcode = 35
	EffGetEffectName          Opcode = 45
	EffGetVendorString        Opcode = 47
	EffGetProductString       Opcode = 48
	EffGetVendorVersion       Opcode = 49
	EffVendorSpecific         Opcode = 50
	EffCanDo                  Opcode = 51
	EffGetParameterProperties Opcode = 56
	EffGetVstVersion          Opcode = 58
	EffGetMidiKeyName         Opcode = 66
)

var opcodeNames = map[Opcode]string{
	EffOpen:                   "effOpen",
	EffClose:                  "effClose",
	EffSetProgram:             "effSetProgram",
	EffGetProgram:             "effGetProgram",
	EffSetProgramName:         "effSetProgramName",
	EffGetProgramName:         "effGetProgramName",
	EffGetParamLabel:          "effGetParamLabel",
	EffGetParamDisplay:        "effGetParamDisplay",
	EffGetParamName:           "effGetParamName",
	EffSetSampleRate:          "effSetSampleRate",
	EffSetBlockSize:           "effSetBlockSize",
	EffMainsChanged:           "effMainsChanged",
	EffEditGetRect:            "effEditGetRect",
	EffEditOpen:               "effEditOpen",
	EffEditClose:              "effEditClose",
	EffEditIdle:               "effEditIdle",
	EffGetChunk:               "effGetChunk",
	EffSetChunk:               "effSetChunk",
	EffProcessEvents:          "effProcessEvents",
	EffCanBeAutomated:         "effCanBeAutomated",
	EffString2Parameter:       "effString2Parameter",
	EffGetProgramNameIndexed:  "effGetProgramNameIndexed",
	EffGetInputProperties:     "effGetInputProperties",
	EffGetOutputProperties:    "effGetOutputProperties",
	EffGetPlugCategory:        "effGetPlugCategory",
	EffGetEffectName:          "effGetEffectName",
	EffGetVendorString:        "effGetVendorString",
	EffGetProductString:       "effGetProductString",
	EffGetVendorVersion:       "effGetVendorVersion",
	EffVendorSpecific:         "effVendorSpecific",
	EffCanDo:                  "effCanDo",
	EffGetParameterProperties: "effGetParameterProperties",
	EffGetVstVersion:          "effGetVstVersion",
	EffGetMidiKeyName:         "effGetMidiKeyName",
}

func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("effOpcode(%d)", int32(o))
}

// HostOpcode identifies a plugin→host callback (audioMaster call).
type HostOpcode int32

const (
	AudioMasterAutomate               HostOpcode = 0
	AudioMasterVersion                HostOpcode = 1
	AudioMasterCurrentID              HostOpcode = 2
	AudioMasterIdle                   HostOpcode = 3
	AudioMasterGetTime                HostOpcode = 7
	AudioMasterProcessEvents          HostOpcode = 8
	AudioMasterIOChanged              HostOpcode = 13
	AudioMasterSizeWindow             HostOpcode = 15
	AudioMasterGetSampleRate          HostOpcode = 16
	AudioMasterGetBlockSize           HostOpcode = 17
	AudioMasterGetCurrentProcessLevel HostOpcode = 23
	AudioMasterGetVendorString        HostOpcode = 32
	AudioMasterGetProductString       HostOpcode = 33
	AudioMasterGetVendorVersion       HostOpcode = 34
	AudioMasterCanDo                  HostOpcode = 37
	AudioMasterUpdateDisplay          HostOpcode = 42
)

var hostOpcodeNames = map[HostOpcode]string{
	AudioMasterAutomate:               "audioMasterAutomate",
	AudioMasterVersion:                "audioMasterVersion",
	AudioMasterCurrentID:              "audioMasterCurrentId",
	AudioMasterIdle:                   "audioMasterIdle",
	AudioMasterGetTime:                "audioMasterGetTime",
	AudioMasterProcessEvents:          "audioMasterProcessEvents",
	AudioMasterIOChanged:              "audioMasterIOChanged",
	AudioMasterSizeWindow:             "audioMasterSizeWindow",
	AudioMasterGetSampleRate:          "audioMasterGetSampleRate",
	AudioMasterGetBlockSize:           "audioMasterGetBlockSize",
	AudioMasterGetCurrentProcessLevel: "audioMasterGetCurrentProcessLevel",
	AudioMasterGetVendorString:        "audioMasterGetVendorString",
	AudioMasterGetProductString:       "audioMasterGetProductString",
	AudioMasterGetVendorVersion:       "audioMasterGetVendorVersion",
	AudioMasterCanDo:                  "audioMasterCanDo",
	AudioMasterUpdateDisplay:          "audioMasterUpdateDisplay",
}

func (o HostOpcode) String() string {
	if name, ok := hostOpcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("audioMasterOpcode(%d)", int32(o))
}
