package ner

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	onnxrt "github.com/yalue/onnxruntime_go"
)

// createSession initializes the ONNX runtime once and opens a dynamic
// session for the tagger model.
func createSession(cfg Config) (*onnxrt.DynamicAdvancedSession, error) {
	if err := setLibraryPath(cfg.LibraryPath); err != nil {
		return nil, err
	}
	if !onnxrt.IsInitialized() {
		if err := onnxrt.InitializeEnvironment(); err != nil {
			return nil, fmt.Errorf("init onnx runtime: %w", err)
		}
	}

	inputs, outputs, err := onnxrt.GetInputOutputInfo(cfg.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("model io info: %w", err)
	}
	if len(inputs) != 1 || len(outputs) != 1 {
		return nil, fmt.Errorf("unexpected model io (in:%d out:%d)", len(inputs), len(outputs))
	}

	opts, err := onnxrt.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("session options: %w", err)
	}
	defer func() { _ = opts.Destroy() }()
	if cfg.NumThreads > 0 {
		_ = opts.SetIntraOpNumThreads(cfg.NumThreads)
	}

	sess, err := onnxrt.NewDynamicAdvancedSession(
		cfg.ModelPath,
		[]string{inputs[0].Name},
		[]string{outputs[0].Name},
		opts,
	)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	return sess, nil
}

func setLibraryPath(explicit string) error {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return fmt.Errorf("onnx runtime library: %w", err)
		}
		onnxrt.SetSharedLibraryPath(explicit)
		return nil
	}
	for _, path := range systemLibraryPaths() {
		if _, err := os.Stat(path); err == nil {
			onnxrt.SetSharedLibraryPath(path)
			return nil
		}
	}
	// last resort: repo-local runtime directory
	local := filepath.Join("onnxruntime", "lib", libraryName())
	if _, err := os.Stat(local); err == nil {
		onnxrt.SetSharedLibraryPath(local)
		return nil
	}
	return fmt.Errorf("onnx runtime library not found")
}

func systemLibraryPaths() []string {
	return []string{
		"/usr/local/lib/libonnxruntime.so",
		"/usr/lib/libonnxruntime.so",
		"/opt/onnxruntime/cpu/lib/libonnxruntime.so",
	}
}

func libraryName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libonnxruntime.dylib"
	case "windows":
		return "onnxruntime.dll"
	default:
		return "libonnxruntime.so"
	}
}
