package decode

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/ohler55/ojg/jp"
	"github.com/spf13/cobra"

	"github.com/gadams999/f123telem/packet"
)

type options struct {
	hex     bool
	dump    bool
	compact bool
	query   string
}

func NewDecodeCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "decode [file...]",
		Short: "decode recorded datagrams to canonical JSON",
		Long: `Decodes raw datagram files, one datagram per file, or with --hex files holding
one hex encoded datagram per line. Without files stdin is read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, cmd.InOrStdin(), cmd.OutOrStdout(), o)
		},
	}
	cmd.Flags().BoolVar(&o.hex, "hex", false, "inputs hold hex encoded datagrams, one per line")
	cmd.Flags().BoolVar(&o.dump, "dump", false, "pretty print the decoded tree instead of JSON")
	cmd.Flags().BoolVar(&o.compact, "compact", false, "one line of JSON per datagram")
	cmd.Flags().StringVar(&o.query, "query", "", "JSONPath applied to each decoded packet, e.g. $.header.frame_identifier")
	return cmd
}

type source struct {
	name string
	raw  []byte
}

func run(files []string, stdin io.Reader, out io.Writer, o options) error {
	var query jp.Expr
	if o.query != "" {
		x, err := jp.ParseString(o.query)
		if err != nil {
			return fmt.Errorf("invalid query %q: %w", o.query, err)
		}
		query = x
	}

	var sources []source
	read := func(name string, r io.Reader) error {
		if o.hex {
			s, err := hexLines(name, r)
			sources = append(sources, s...)
			return err
		}
		raw, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		sources = append(sources, source{name: name, raw: raw})
		return nil
	}
	if len(files) == 0 {
		if err := read("stdin", stdin); err != nil {
			return err
		}
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = read(name, f)
		f.Close()
		if err != nil {
			return err
		}
	}

	for _, s := range sources {
		if err := write(out, s, query, o); err != nil {
			return err
		}
	}
	return nil
}

// hexLines reads one datagram per non empty line; lines starting with # are
// skipped.
func hexLines(name string, r io.Reader) ([]source, error) {
	var out []source
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 64*1024)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw, err := hex.DecodeString(line)
		if err != nil {
			return out, fmt.Errorf("%s:%d: %w", name, n, err)
		}
		out = append(out, source{name: fmt.Sprintf("%s:%d", name, n), raw: raw})
	}
	return out, sc.Err()
}

func write(out io.Writer, s source, query jp.Expr, o options) error {
	p, err := packet.DecodePacket(s.raw)
	if err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	var v any = p.Canonical().Plain()
	if query != nil {
		res := query.Get(v)
		if len(res) == 1 {
			v = res[0]
		} else {
			v = res
		}
	}
	if o.dump {
		printer := pp.New()
		printer.SetColoringEnabled(false)
		_, err = printer.Fprintln(out, v)
		return err
	}
	_, err = fmt.Fprintln(out, packet.FormatJSON(v, !o.compact))
	return err
}
