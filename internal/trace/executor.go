package trace

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// RunTrace type-checks project with the given compiler and writes the trace
// files into outDir. The compiler's exit status is ignored when it produced
// trace files, because type errors do not stop trace generation.
func RunTrace(ctx context.Context, compiler Compiler, project, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return errors.Wrapf(err, "create trace directory %s", outDir)
	}

	args := compiler.TraceCommand(project, outDir)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	files, err := ListTraceFiles(outDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if runErr != nil {
			return errors.Wrapf(runErr, "%s: %s", compiler.Name(), bytes.TrimSpace(stderr.Bytes()))
		}
		return errors.Errorf("%s wrote no %s files to %s", compiler.Name(), TraceFilePrefix, outDir)
	}
	return nil
}
