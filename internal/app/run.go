package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vk/gridctl/internal/command"
	"github.com/vk/gridctl/internal/ctxlog"
	"github.com/vk/gridctl/internal/resolver"
)

// defaultCommand is substituted when the user supplies no command tokens.
const defaultCommand = "help"

// Run executes one end-to-end command invocation. Failures are reported
// once, at error level, and returned so the entrypoint can map them to a
// process exit code.
func (a *App) Run(ctx context.Context, inv *Invocation) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if err := a.runOnce(ctx, inv); err != nil {
		var cmdErr *command.Error
		if errors.As(err, &cmdErr) {
			a.logger.Error(cmdErr.Message, cmdErr.Params...)
		} else {
			a.logger.Error(err.Error())
		}
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) runOnce(ctx context.Context, inv *Invocation) error {
	tokens := inv.Tokens
	if len(tokens) == 0 {
		a.logger.Debug("No command given, substituting the default.", "command", defaultCommand)
		tokens = []string{defaultCommand}
	}

	// Advisory pass: detect that the tokens name a namespace rather than a
	// command, so its synopsis can be shown without invoking anything. An
	// unknown command here is deferred to the authoritative pass below;
	// any other failure aborts immediately.
	pre, err := resolver.Resolve(ctx, a.registry.Root(), tokens)
	switch {
	case err != nil:
		var unknown *command.UnknownError
		if !errors.As(err, &unknown) {
			return err
		}
		a.logger.Debug("Pre-check resolution failed.", "path", strings.Join(unknown.Path, " "))
	default:
		if _, ok := pre.Leaf(); !ok {
			fmt.Fprintln(a.outW, pre.Node.Usage())
			return nil
		}
	}

	// Authoritative pass over the full token list.
	res, err := resolver.Resolve(ctx, a.registry.Root(), tokens)
	if err != nil {
		return err
	}
	leaf, ok := res.Leaf()
	if !ok {
		// The tree is read-only between the two passes, so this cannot
		// happen; guard it anyway rather than invoking a nil handler.
		return fmt.Errorf("resolved %q to a namespace on the final pass", strings.Join(res.MatchedPath, " "))
	}

	args := command.Args{Positional: res.RemainingArgs, Named: inv.Named}
	a.logger.Debug("Invoking command.", "path", strings.Join(res.MatchedPath, " "), "args", args.Positional)
	result, err := leaf.Invoke(ctx, args)
	if err != nil {
		return err
	}

	// Textual results are informational output; anything else is the
	// command's own business.
	if text, ok := result.(string); ok && text != "" {
		fmt.Fprintln(a.outW, text)
	}
	return nil
}
