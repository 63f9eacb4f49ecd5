package packet

import (
	"bytes"
	"encoding/binary"
)

// Event string codes.
const (
	CodeSessionStarted     = "SSTA" // Sent when the session starts
	CodeSessionEnded       = "SEND" // Sent when the session ends
	CodeFastestLap         = "FTLP" // When a driver achieves the fastest lap
	CodeRetirement         = "RTMT" // When a driver retires
	CodeDRSEnabled         = "DRSE" // Race control have enabled DRS
	CodeDRSDisabled        = "DRSD" // Race control have disabled DRS
	CodeTeamMateInPits     = "TMPT" // Your team mate has entered the pits
	CodeChequeredFlag      = "CHQF" // The chequered flag has been waved
	CodeRaceWinner         = "RCWN" // The race winner is announced
	CodePenalty            = "PENA" // A penalty has been issued
	CodeSpeedTrap          = "SPTP" // Speed trap has been triggered by fastest speed
	CodeStartLights        = "STLG" // Start lights – number shown
	CodeLightsOut          = "LGOT" // Lights out
	CodeDriveThroughServed = "DTSV" // Drive through penalty served
	CodeStopGoServed       = "SGSV" // Stop go penalty served
	CodeFlashback          = "FLBK" // Flashback activated
	CodeButtons            = "BUTN" // Button status changed
	CodeRedFlag            = "RDFL" // Red flag shown
	CodeOvertake           = "OVTK" // Overtake occurred
)

// EventCodeSize is the width of the event string code.
const EventCodeSize = 4

var (
	fastestLapLayout = NewLayout("fastest_lap",
		Uint8("vehicle_idx"), // Vehicle index of car achieving fastest lap
		Float32("lap_time"),  // Lap time is in seconds
	)
	retirementLayout = NewLayout("retirement",
		Uint8("vehicle_idx"), // Vehicle index of car retiring
	)
	teamMateInPitsLayout = NewLayout("team_mate_in_pits",
		Uint8("vehicle_idx"), // Vehicle index of team mate
	)
	raceWinnerLayout = NewLayout("race_winner",
		Uint8("vehicle_idx"), // Vehicle index of the race winner
	)
	penaltyLayout = NewLayout("penalty",
		Uint8("penalty_type"),      // Penalty type – see appendix
		Uint8("infringement_type"), // Infringement type – see appendix
		Uint8("vehicle_idx"),       // Vehicle index of the car the penalty is applied to
		Uint8("other_vehicle_idx"), // Vehicle index of the other car involved
		Uint8("time"),              // Time gained, or time spent doing action in seconds
		Uint8("lap_num"),           // Lap the penalty occurred on
		Uint8("places_gained"),     // Number of places gained by this
	)
	speedTrapLayout = NewLayout("speed_trap",
		Uint8("vehicle_idx"),
		Float32("speed"), // Top speed achieved in kilometres per hour
		Uint8("overall_fastest_in_session"),
		Uint8("is_driver_fastest_in_session"),
		Uint8("fastest_vehicle_idx_in_session"),
		Float32("fastest_speed_in_session"),
	)
	startLightsLayout = NewLayout("start_lights",
		Uint8("num_lights"), // Number of lights showing
	)
	driveThroughServedLayout = NewLayout("drive_through_penalty_served",
		Uint8("vehicle_idx"),
	)
	stopGoServedLayout = NewLayout("stop_go_penalty_served",
		Uint8("vehicle_idx"),
	)
	flashbackLayout = NewLayout("flashback",
		Uint32("flashback_frame_identifier"), // Frame identifier flashed back to
		Float32("flashback_session_time"),    // Session time flashed back to
	)
	buttonsLayout = NewLayout("buttons",
		Uint32("button_status"), // Bit flags specifying which buttons are being pressed currently
	)
	overtakeLayout = NewLayout("overtake",
		Uint8("overtaking_vehicle_idx"),
		Uint8("being_overtaken_vehicle_idx"),
	)
)

var eventUnion = NewUnion("event_string_code",
	UnionMember{Code: CodeSessionStarted, Name: "session_started"},
	UnionMember{Code: CodeSessionEnded, Name: "session_ended"},
	UnionMember{Code: CodeFastestLap, Name: "fastest_lap", Layout: fastestLapLayout},
	UnionMember{Code: CodeRetirement, Name: "retirement", Layout: retirementLayout},
	UnionMember{Code: CodeDRSEnabled, Name: "drs_enabled"},
	UnionMember{Code: CodeDRSDisabled, Name: "drs_disabled"},
	UnionMember{Code: CodeTeamMateInPits, Name: "team_mate_in_pits", Layout: teamMateInPitsLayout},
	UnionMember{Code: CodeChequeredFlag, Name: "chequered_flag"},
	UnionMember{Code: CodeRaceWinner, Name: "race_winner", Layout: raceWinnerLayout},
	UnionMember{Code: CodePenalty, Name: "penalty", Layout: penaltyLayout},
	UnionMember{Code: CodeSpeedTrap, Name: "speed_trap", Layout: speedTrapLayout},
	UnionMember{Code: CodeStartLights, Name: "start_lights", Layout: startLightsLayout},
	UnionMember{Code: CodeLightsOut, Name: "lights_out"},
	UnionMember{Code: CodeDriveThroughServed, Name: "drive_through_penalty_served", Layout: driveThroughServedLayout},
	UnionMember{Code: CodeStopGoServed, Name: "stop_go_penalty_served", Layout: stopGoServedLayout},
	UnionMember{Code: CodeFlashback, Name: "flashback", Layout: flashbackLayout},
	UnionMember{Code: CodeButtons, Name: "buttons", Layout: buttonsLayout},
	UnionMember{Code: CodeRedFlag, Name: "red_flag"},
	UnionMember{Code: CodeOvertake, Name: "overtake", Layout: overtakeLayout},
)

var eventLayout = NewLayout("event",
	Nested("header", headerLayout),
	Text("event_string_code", EventCodeSize), // Event string code
	Tagged("event_details", eventUnion),      // Interpreted differently for each type
)

// EventUnion returns the union of event payloads keyed by event string code.
func EventUnion() *Union { return eventUnion }

// EventDetails is the payload of one event code. Codes without payload map to
// empty marker types.
type EventDetails interface {
	Code() string
	isEventDetails()
}

type SessionStarted struct{}

type SessionEnded struct{}

type FastestLap struct {
	VehicleIdx uint8
	LapTime    float32 // seconds
}

type Retirement struct {
	VehicleIdx uint8
}

type DRSEnabled struct{}

type DRSDisabled struct{}

type TeamMateInPits struct {
	VehicleIdx uint8
}

type ChequeredFlag struct{}

type RaceWinner struct {
	VehicleIdx uint8
}

type Penalty struct {
	PenaltyType      uint8
	InfringementType uint8
	VehicleIdx       uint8
	OtherVehicleIdx  uint8
	Time             uint8
	LapNum           uint8
	PlacesGained     uint8
}

type SpeedTrap struct {
	VehicleIdx                 uint8
	Speed                      float32
	OverallFastestInSession    uint8
	IsDriverFastestInSession   uint8
	FastestVehicleIdxInSession uint8
	FastestSpeedInSession      float32
}

type StartLights struct {
	NumLights uint8
}

type LightsOut struct{}

type DriveThroughServed struct {
	VehicleIdx uint8
}

type StopGoServed struct {
	VehicleIdx uint8
}

type Flashback struct {
	FrameIdentifier uint32
	SessionTime     float32
}

type Buttons struct {
	ButtonStatus uint32
}

type RedFlag struct{}

type Overtake struct {
	OvertakingVehicleIdx     uint8
	BeingOvertakenVehicleIdx uint8
}

func (SessionStarted) Code() string     { return CodeSessionStarted }
func (SessionEnded) Code() string       { return CodeSessionEnded }
func (FastestLap) Code() string         { return CodeFastestLap }
func (Retirement) Code() string         { return CodeRetirement }
func (DRSEnabled) Code() string         { return CodeDRSEnabled }
func (DRSDisabled) Code() string        { return CodeDRSDisabled }
func (TeamMateInPits) Code() string     { return CodeTeamMateInPits }
func (ChequeredFlag) Code() string      { return CodeChequeredFlag }
func (RaceWinner) Code() string         { return CodeRaceWinner }
func (Penalty) Code() string            { return CodePenalty }
func (SpeedTrap) Code() string          { return CodeSpeedTrap }
func (StartLights) Code() string        { return CodeStartLights }
func (LightsOut) Code() string          { return CodeLightsOut }
func (DriveThroughServed) Code() string { return CodeDriveThroughServed }
func (StopGoServed) Code() string       { return CodeStopGoServed }
func (Flashback) Code() string          { return CodeFlashback }
func (Buttons) Code() string            { return CodeButtons }
func (RedFlag) Code() string            { return CodeRedFlag }
func (Overtake) Code() string           { return CodeOvertake }

func (SessionStarted) isEventDetails()     {}
func (SessionEnded) isEventDetails()       {}
func (FastestLap) isEventDetails()         {}
func (Retirement) isEventDetails()         {}
func (DRSEnabled) isEventDetails()         {}
func (DRSDisabled) isEventDetails()        {}
func (TeamMateInPits) isEventDetails()     {}
func (ChequeredFlag) isEventDetails()      {}
func (RaceWinner) isEventDetails()         {}
func (Penalty) isEventDetails()            {}
func (SpeedTrap) isEventDetails()          {}
func (StartLights) isEventDetails()        {}
func (LightsOut) isEventDetails()          {}
func (DriveThroughServed) isEventDetails() {}
func (StopGoServed) isEventDetails()       {}
func (Flashback) isEventDetails()          {}
func (Buttons) isEventDetails()            {}
func (RedFlag) isEventDetails()            {}
func (Overtake) isEventDetails()           {}

func readDetails[T EventDetails](b []byte) (EventDetails, error) {
	var d T
	if n := binary.Size(d); n > 0 {
		if err := binary.Read(bytes.NewReader(b[:n]), binary.LittleEndian, &d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

var eventDecoders = map[string]func([]byte) (EventDetails, error){
	CodeSessionStarted:     readDetails[SessionStarted],
	CodeSessionEnded:       readDetails[SessionEnded],
	CodeFastestLap:         readDetails[FastestLap],
	CodeRetirement:         readDetails[Retirement],
	CodeDRSEnabled:         readDetails[DRSEnabled],
	CodeDRSDisabled:        readDetails[DRSDisabled],
	CodeTeamMateInPits:     readDetails[TeamMateInPits],
	CodeChequeredFlag:      readDetails[ChequeredFlag],
	CodeRaceWinner:         readDetails[RaceWinner],
	CodePenalty:            readDetails[Penalty],
	CodeSpeedTrap:          readDetails[SpeedTrap],
	CodeStartLights:        readDetails[StartLights],
	CodeLightsOut:          readDetails[LightsOut],
	CodeDriveThroughServed: readDetails[DriveThroughServed],
	CodeStopGoServed:       readDetails[StopGoServed],
	CodeFlashback:          readDetails[Flashback],
	CodeButtons:            readDetails[Buttons],
	CodeRedFlag:            readDetails[RedFlag],
	CodeOvertake:           readDetails[Overtake],
}

// EventRecord is a decoded event packet with its payload as a typed value.
type EventRecord struct {
	Header  Header
	Code    string
	Details EventDetails
}

// Name is the snake_case name of the event, e.g. "fastest_lap".
func (e *EventRecord) Name() string {
	m, _ := eventUnion.Member(e.Code)
	return m.Name
}

// DecodeEvent decodes an event packet into its typed payload. Only the bytes
// of the member selected by the event code are read.
func DecodeEvent(buf []byte) (*EventRecord, error) {
	hdr, err := ParseHeader(buf)
	if err != nil {
		return nil, err
	}
	if _, err := Resolve(hdr.PacketFormat, hdr.PacketVersion, hdr.PacketID); err != nil {
		return nil, err
	}
	if PacketID(hdr.PacketID) != PacketEvent {
		return nil, ErrNotEvent
	}
	if len(buf) != eventLayout.Size() {
		return nil, &SizeMismatchError{Layout: eventLayout.Name(), Expected: eventLayout.Size(), Actual: len(buf)}
	}

	codeOff := HeaderSize
	code := string(buf[codeOff : codeOff+EventCodeSize])
	dec, ok := eventDecoders[code]
	if !ok {
		return nil, &UnknownEventCodeError{Code: code}
	}
	details, err := dec(buf[codeOff+EventCodeSize:])
	if err != nil {
		return nil, err
	}
	return &EventRecord{Header: hdr, Code: code, Details: details}, nil
}
