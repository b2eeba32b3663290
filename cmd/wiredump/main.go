// Command wiredump decodes captured bridge messages and prints their
// structure, for debugging protocol skew between the two processes.
//
// A capture is the raw payload of one framed message, written to a
// file. The message type is not self-describing on the wire (the
// transport's framing carries it), so it must be named explicitly.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/crossaudio/vst-bridge/vst"
	"github.com/crossaudio/vst-bridge/wire"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to a captured message buffer")
		msgType     = flag.String("type", "call", "Message type: call, result, param, param-result, audio")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Enable debug logging")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Usage: wiredump -file <capture> [-type call|result|param|param-result|audio]")
		fmt.Fprintln(os.Stderr, "       wiredump -file <capture> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err == nil {
			wire.SetLogger(logger)
			defer logger.Sync()
		}
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(*file, *msgType, data); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	lines, err := describe(*msgType, data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Capture: %s (%d bytes, %s)\n", *file, len(data), *msgType)
	for _, line := range lines {
		fmt.Println("  " + line)
	}
}

// describe decodes one message and renders its fields as lines.
func describe(msgType string, data []byte) ([]string, error) {
	switch msgType {
	case "call":
		c, err := wire.DecodeDispatchCall(data)
		if err != nil {
			return nil, err
		}
		return []string{
			fmt.Sprintf("opcode:  %d (%s)", c.Opcode, vst.Opcode(c.Opcode)),
			fmt.Sprintf("index:   %d", c.Index),
			fmt.Sprintf("value:   %d", c.Value),
			fmt.Sprintf("option:  %g", c.Option),
			fmt.Sprintf("payload: %s", callPayloadLine(c.Payload)),
		}, nil
	case "result":
		res, err := wire.DecodeDispatchResult(data)
		if err != nil {
			return nil, err
		}
		return []string{
			fmt.Sprintf("return:  %d", res.ReturnValue),
			fmt.Sprintf("payload: %s", resultPayloadLine(res.Payload)),
		}, nil
	case "param":
		p, err := wire.DecodeParameterCall(data)
		if err != nil {
			return nil, err
		}
		lines := []string{fmt.Sprintf("index: %d", p.Index)}
		if p.Value != nil {
			lines = append(lines, fmt.Sprintf("value: %g (setParameter)", *p.Value))
		} else {
			lines = append(lines, "value: absent (getParameter)")
		}
		return lines, nil
	case "param-result":
		p, err := wire.DecodeParameterResult(data)
		if err != nil {
			return nil, err
		}
		if p.Value != nil {
			return []string{fmt.Sprintf("value: %g", *p.Value)}, nil
		}
		return []string{"value: absent (acknowledgement)"}, nil
	case "audio":
		b, err := wire.DecodeAudioBlock(data)
		if err != nil {
			return nil, err
		}
		return []string{
			fmt.Sprintf("channels: %d", len(b.Channels)),
			fmt.Sprintf("frames:   %d", b.FrameCount),
		}, nil
	default:
		return nil, fmt.Errorf("unknown message type %q", msgType)
	}
}

func callPayloadLine(p wire.CallPayload) string {
	switch v := p.(type) {
	case wire.NoPayload:
		return "none"
	case wire.TextPayload:
		return fmt.Sprintf("text %q", v.Text)
	case wire.BlobPayload:
		return fmt.Sprintf("blob (%d bytes)", len(v.Data))
	case wire.HandlePayload:
		return fmt.Sprintf("handle 0x%x", v.Handle)
	case wire.PluginPayload:
		return fmt.Sprintf("plugin snapshot (id 0x%08x, %d params)", v.Plugin.UniqueID, v.Plugin.NumParams)
	case wire.EventsPayload:
		return fmt.Sprintf("event list (%d events)", len(v.Events.Events))
	case wire.WantsBlob:
		return "wants blob"
	case wire.IOPropertiesPayload:
		return "io properties"
	case wire.KeyNamePayload:
		return "midi key name"
	case wire.ParameterPropertiesPayload:
		return "parameter properties"
	case wire.WantsRect:
		return "wants rect"
	case wire.WantsTimeInfo:
		return "wants time info"
	case wire.WantsText:
		return "wants text"
	default:
		return fmt.Sprintf("%T", p)
	}
}

func resultPayloadLine(p wire.ResultPayload) string {
	switch v := p.(type) {
	case wire.NoResult:
		return "none"
	case wire.TextResult:
		return fmt.Sprintf("text %q", v.Text)
	case wire.BlobResult:
		return fmt.Sprintf("blob (%d bytes)", len(v.Data))
	case wire.PluginResult:
		return fmt.Sprintf("plugin snapshot (id 0x%08x, %d params)", v.Plugin.UniqueID, v.Plugin.NumParams)
	case wire.IOPropertiesResult:
		return "io properties"
	case wire.KeyNameResult:
		return "midi key name"
	case wire.ParameterPropertiesResult:
		return "parameter properties"
	case wire.RectResult:
		return fmt.Sprintf("rect %dx%d", v.Rect.Right-v.Rect.Left, v.Rect.Bottom-v.Rect.Top)
	case wire.TimeInfoResult:
		return fmt.Sprintf("time info (tempo %g, pos %g)", v.TimeInfo.Tempo, v.TimeInfo.SamplePos)
	default:
		return fmt.Sprintf("%T", p)
	}
}
