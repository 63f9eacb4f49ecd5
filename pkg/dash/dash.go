// Package dash renders a live terminal dashboard of the player's car.
package dash

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gadams999/f123telem/appendix"
	"github.com/gadams999/f123telem/packet"
	"github.com/gadams999/f123telem/pkg/pipeline"
)

// PacketMsg carries one decoded packet into the model.
type PacketMsg pipeline.Decoded

type closedMsg struct{}

type session struct {
	track       int
	sessionType int
	weather     int
	trackTemp   int64
	airTemp     int64
	totalLaps   uint64
}

type lap struct {
	num      uint64
	position uint64
	current  time.Duration
	last     time.Duration
}

type Model struct {
	in <-chan pipeline.Decoded

	telemetry    packet.CarTelemetry
	hasTelemetry bool
	status       packet.CarStatus
	hasStatus    bool
	session      session
	hasSession   bool
	lap          lap
	events       []string
	packets      int
	lastFrame    uint32
	width        int
}

const maxEvents = 5

// NewModel returns a model fed from in. The program quits when in is closed.
func NewModel(in <-chan pipeline.Decoded) Model {
	return Model{in: in}
}

// Run starts the dashboard on the terminal and blocks until the user quits,
// in is closed or ctx is done.
func Run(ctx context.Context, in <-chan pipeline.Decoded) error {
	_, err := tea.NewProgram(NewModel(in), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}

func (m Model) Init() tea.Cmd {
	return m.wait()
}

func (m Model) wait() tea.Cmd {
	if m.in == nil {
		return nil
	}
	in := m.in
	return func() tea.Msg {
		d, ok := <-in
		if !ok {
			return closedMsg{}
		}
		return PacketMsg(d)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case closedMsg:
		return m, tea.Quit
	case PacketMsg:
		m.apply(pipeline.Decoded(msg))
		return m, m.wait()
	}
	return m, nil
}

func (m *Model) apply(d pipeline.Decoded) {
	p := d.Packet
	m.packets++
	m.lastFrame = p.Header.FrameIdentifier
	switch p.ID {
	case packet.PacketCarTelemetry:
		if t, err := packet.PlayerTelemetry(p); err == nil {
			m.telemetry, m.hasTelemetry = t, true
		}
	case packet.PacketCarStatus:
		if s, err := packet.PlayerStatus(p); err == nil {
			m.status, m.hasStatus = s, true
		}
	case packet.PacketSession:
		r := p.Record
		track, _ := r.Int("track_id")
		st, _ := r.Uint("session_type")
		weather, _ := r.Uint("weather")
		trackTemp, _ := r.Int("track_temperature")
		airTemp, _ := r.Int("air_temperature")
		laps, _ := r.Uint("total_laps")
		m.session = session{
			track:       int(track),
			sessionType: int(st),
			weather:     int(weather),
			trackTemp:   trackTemp,
			airTemp:     airTemp,
			totalLaps:   laps,
		}
		m.hasSession = true
	case packet.PacketLapData:
		cars, _ := p.Record.Records("lap_data")
		idx := int(p.Header.PlayerCarIndex)
		if idx >= len(cars) {
			return
		}
		car := cars[idx]
		num, _ := car.Uint("current_lap_num")
		pos, _ := car.Uint("car_position")
		cur, _ := car.Uint("current_lap_time_in_ms")
		last, _ := car.Uint("last_lap_time_in_ms")
		m.lap = lap{
			num:      num,
			position: pos,
			current:  time.Duration(cur) * time.Millisecond,
			last:     time.Duration(last) * time.Millisecond,
		}
	case packet.PacketEvent:
		ev, err := packet.DecodeEvent(d.Raw)
		if err != nil || ev.Code == packet.CodeButtons {
			return
		}
		m.pushEvent(appendix.DescribeEvent(ev.Details))
	}
}

func (m *Model) pushEvent(s string) {
	m.events = append(m.events, s)
	if len(m.events) > maxEvents {
		m.events = m.events[len(m.events)-maxEvents:]
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString("F1 23 telemetry  (q to quit)\n\n")

	if m.hasSession {
		s := m.session
		fmt.Fprintf(&b, "%s  %s  %s  track %d°C  air %d°C  %d laps\n",
			appendix.Tracks.Name(s.track),
			appendix.SessionTypes.Name(s.sessionType),
			appendix.Weather.Name(s.weather),
			s.trackTemp, s.airTemp, s.totalLaps)
	} else {
		b.WriteString("waiting for session data\n")
	}
	fmt.Fprintf(&b, "lap %d  P%d  current %s  last %s\n\n",
		m.lap.num, m.lap.position, lapTime(m.lap.current), lapTime(m.lap.last))

	if m.hasTelemetry {
		t := m.telemetry
		fmt.Fprintf(&b, "speed %3d km/h  gear %s  rpm %5d  DRS %s\n",
			t.Speed, gear(t.Gear), t.EngineRPM, appendix.OnOff.Name(int(t.DRS)))
		fmt.Fprintf(&b, "throttle %s\n", bar(t.Throttle, m.barWidth()))
		fmt.Fprintf(&b, "brake    %s\n", bar(t.Brake, m.barWidth()))
	} else {
		b.WriteString("waiting for telemetry\n")
	}
	if m.hasStatus {
		s := m.status
		fmt.Fprintf(&b, "fuel %.1f kg (%.1f laps)  tyre %s  ERS %s %.1f MJ\n",
			s.FuelInTank, s.FuelRemainingLaps,
			appendix.VisualTyreCompounds.Name(int(s.VisualTyreCompound)),
			appendix.ERSDeployModes.Name(int(s.ERSDeployMode)),
			s.ERSStoreEnergy/1e6)
	}

	b.WriteString("\nevents\n")
	for i := len(m.events) - 1; i >= 0; i-- {
		b.WriteString("  " + m.events[i] + "\n")
	}
	fmt.Fprintf(&b, "\n%d packets, frame %d\n", m.packets, m.lastFrame)
	return b.String()
}

func (m Model) barWidth() int {
	if m.width > 20 {
		return min(m.width-12, 50)
	}
	return 30
}

func bar(v float32, width int) string {
	n := int(max(0, min(v, 1)) * float32(width))
	return "[" + strings.Repeat("#", n) + strings.Repeat(" ", width-n) + "]"
}

func gear(g int8) string {
	switch {
	case g < 0:
		return "R"
	case g == 0:
		return "N"
	default:
		return fmt.Sprint(g)
	}
}

func lapTime(d time.Duration) string {
	if d <= 0 {
		return "-:--.---"
	}
	m := d / time.Minute
	s := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%06.3f", m, s)
}
