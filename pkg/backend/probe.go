package backend

import (
	"os/exec"

	"github.com/arthur-debert/wpg/pkg/errors"
	"github.com/arthur-debert/wpg/pkg/logging"
	"github.com/arthur-debert/wpg/pkg/types"
)

// HelpFlag is passed to the tool to obtain its usage text
const HelpFlag = "-h"

// CommandProber runs `<Command> -h` and returns its stdout.
// No timeout is applied; a hung tool hangs the caller.
type CommandProber struct {
	Command string
}

// NewCommandProber creates a prober for the configured wal_command
func NewCommandProber(settings types.Settings) *CommandProber {
	command := types.DefaultWalCommand
	if settings != nil {
		command = settings.String(types.SettingWalCommand, types.DefaultWalCommand)
	}
	return &CommandProber{Command: command}
}

// HelpText implements Prober
func (c *CommandProber) HelpText() (string, error) {
	logging.LogCommand(c.Command, []string{HelpFlag})

	output, err := exec.Command(c.Command, HelpFlag).Output()
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrBackendProbe, "failed to run %s %s", c.Command, HelpFlag)
	}
	return string(output), nil
}

var _ Prober = (*CommandProber)(nil)
