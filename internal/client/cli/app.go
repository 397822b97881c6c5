package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/pocket/internal/client/config"
	"github.com/dmitrijs2005/pocket/internal/client/device"
	"github.com/dmitrijs2005/pocket/internal/client/models"
	"github.com/dmitrijs2005/pocket/internal/client/session"
	"github.com/dmitrijs2005/pocket/internal/flagx"
	"github.com/dmitrijs2005/pocket/internal/logging"
)

// Command names.
const (
	CmdStatus   = "status"
	CmdRegister = "register"
	CmdPayload  = "payload"
	CmdHelp     = "help"
)

const usage = `usage: pocket [flags] [status|register|payload|help]

register records the device in the local vault only; announcing it to a
server needs a client built with a registrar.

flags:
  -c, -config <file>  JSON configuration file
  -d <dir>            base directory for the .pocket storage (default: $HOME)
  -r <file>           registration payload file (default: stdin)
  -t <seconds>        database busy timeout
  -l <level>          log level: debug, info, warn, error
  -f <format>         log format: text, json, zap
`

// App runs a single pocket command.
type App struct {
	config *config.Config
	log    logging.Logger
	in     io.Reader
	out    io.Writer

	registrar session.Registrar
	newUUID   func() string
}

// Option configures an App.
type Option func(*App)

// WithRegistrar sets the remote registrar used by the register command.
// Without one, register only records the device locally.
func WithRegistrar(r session.Registrar) Option {
	return func(a *App) {
		a.registrar = r
	}
}

// NewApp builds an App reading from stdin and writing to stdout.
func NewApp(c *config.Config, log logging.Logger, opts ...Option) *App {
	if log == nil {
		log = logging.NewNop()
	}
	a := &App{
		config:  c,
		log:     log,
		in:      os.Stdin,
		out:     os.Stdout,
		newUUID: uuid.NewString,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Run dispatches the command found in args, the program arguments without
// the program name.
func (a *App) Run(ctx context.Context, args []string) error {
	cmd := CmdStatus
	rest := flagx.Positional(args, config.ValueFlags)
	if len(rest) > 0 {
		cmd = rest[0]
	}

	switch cmd {
	case CmdStatus:
		return a.status(ctx)
	case CmdRegister:
		return a.register(ctx)
	case CmdPayload:
		return a.payload()
	case CmdHelp:
		_, err := fmt.Fprint(a.out, usage)
		return err
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) openSession(ctx context.Context) (*session.Session, error) {
	payload, err := readPayload(a.config.RegistrationFile, a.in)
	if err != nil {
		return nil, err
	}
	return session.Open(ctx, payload, a.config.DataDir,
		session.WithLogger(a.log),
		session.WithBusyTimeout(a.config.BusyTimeout),
	)
}

func (a *App) status(ctx context.Context) error {
	s, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	version, err := s.Store().Version(ctx)
	if err != nil {
		return err
	}

	d := s.Device()
	fmt.Fprintf(a.out, "state:          %s\n", s.State())
	fmt.Fprintf(a.out, "device:         %s (%s)\n", d.UUID, d.Status)
	fmt.Fprintf(a.out, "host:           %s\n", d.Host)
	fmt.Fprintf(a.out, "database:       %s\n", s.DatabasePath())
	fmt.Fprintf(a.out, "schema version: %d\n", version)
	if u := s.User(); u != nil {
		fmt.Fprintf(a.out, "user:           %s (%s)\n", u.UUID, u.Status)
	} else {
		fmt.Fprintln(a.out, "user:           not signed in")
	}
	return nil
}

func (a *App) register(ctx context.Context) error {
	s, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.RegisterDevice(ctx, a.registrar); err != nil {
		return err
	}
	where := "locally"
	if a.registrar != nil {
		where = "with the server"
	}
	fmt.Fprintf(a.out, "device %s registered %s\n", s.Device().UUID, where)
	return nil
}

func (a *App) payload() error {
	b, err := device.Payload(models.Device{UUID: a.newUUID()})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "%s\n", b)
	return err
}
