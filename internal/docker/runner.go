package docker

import (
	"bytes"
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/pkg/stdcopy"
)

// workMount is the path inside the container where the working context is
// mounted and the solver command executes.
const workMount = "/work"

// Runner implements workdir.Runner by executing the solver command inside
// a one-shot container.
//
// The working context directory is bind-mounted at /work, which becomes
// the container's working directory, so the solver finds its input file
// and leaves its output files exactly where local execution would. The
// resource root is bind-mounted read-only at its own host path: the
// working context stages resource groups as symlinks to absolute host
// paths, and mounting the root at an identical path keeps those links
// resolvable inside the container.
type Runner struct {
	cli          *Client
	image        string
	resourceRoot string
}

// NewRunner creates a container-backed Runner that runs the given image.
// resourceRoot is the host path of the static resource tree; pass the
// same value given to the orchestrator.
func NewRunner(cli *Client, image, resourceRoot string) *Runner {
	return &Runner{cli: cli, image: image, resourceRoot: resourceRoot}
}

// Run executes `sh -c "<command> > <logName>"` inside a fresh container
// and blocks until it exits. The container's exit code and captured
// standard error are returned; like the local runner, a non-zero exit
// code is data for the orchestrator's classifier, not an error. The
// container is always removed before Run returns.
func (r *Runner) Run(ctx context.Context, dir, command, logName string) (int, string, error) {
	binds := []string{dir + ":" + workMount}
	if r.resourceRoot != "" {
		binds = append(binds, r.resourceRoot+":"+r.resourceRoot+":ro")
	}

	created, err := r.cli.inner.ContainerCreate(ctx,
		&container.Config{
			Image:      r.image,
			Cmd:        []string{"/bin/sh", "-c", command + " > " + logName},
			WorkingDir: workMount,
		},
		&container.HostConfig{
			Binds: binds,
		},
		nil, nil, "")
	if err != nil {
		return -1, "", fmt.Errorf("failed to create solver container from image %q: %w", r.image, err)
	}

	// Remove the container on every exit path. Removal failures are not
	// worth surfacing over the run result; a forced remove of an exited
	// container only fails if the daemon itself is gone.
	defer func() {
		_ = r.cli.inner.ContainerRemove(context.WithoutCancel(ctx), created.ID,
			container.RemoveOptions{Force: true})
	}()

	if err := r.cli.inner.ContainerStart(ctx, created.ID, container.StartOptions{}); err != nil {
		return -1, "", fmt.Errorf("failed to start solver container: %w", err)
	}

	// Block until the container stops. ContainerWait delivers exactly one
	// value on one of the two channels.
	waitCh, errCh := r.cli.inner.ContainerWait(ctx, created.ID, container.WaitConditionNotRunning)
	var exitCode int
	select {
	case status := <-waitCh:
		exitCode = int(status.StatusCode)
	case err := <-errCh:
		return -1, "", fmt.Errorf("failed waiting for solver container: %w", err)
	}

	stderr, err := r.containerStderr(ctx, created.ID)
	if err != nil {
		// The run itself completed; a log-retrieval failure should not
		// mask the exit code. Report what we have.
		return exitCode, "", nil
	}

	return exitCode, stderr, nil
}

// containerStderr fetches the container's standard error stream. Docker
// multiplexes stdout and stderr over one connection; stdcopy demuxes them
// and we keep only stderr (stdout was redirected to the log file by the
// shell inside the container).
func (r *Runner) containerStderr(ctx context.Context, id string) (string, error) {
	logs, err := r.cli.inner.ContainerLogs(ctx, id, container.LogsOptions{
		ShowStderr: true,
	})
	if err != nil {
		return "", err
	}
	defer logs.Close()

	var stdout, stderr bytes.Buffer
	if _, err := stdcopy.StdCopy(&stdout, &stderr, logs); err != nil {
		return "", err
	}
	return stderr.String(), nil
}
