package packet

import "github.com/samber/lo"

// PacketID is the record-kind selector carried in the header.
type PacketID uint8

const (
	PacketMotion              PacketID = iota // Contains all motion data for player's car
	PacketSession                             // Data about the session – track, time left
	PacketLapData                             // Data about all the lap times of cars in the session
	PacketEvent                               // Various notable events that happen during a session
	PacketParticipants                        // List of participants in the session
	PacketCarSetups                           // Packet detailing car setups for cars in the race
	PacketCarTelemetry                        // Telemetry data for all cars
	PacketCarStatus                           // Status data for all cars
	PacketFinalClassification                 // Final classification confirmation at the end of a race
	PacketLobbyInfo                           // Information about players in a multiplayer lobby
	PacketCarDamage                           // Damage status for all cars
	PacketSessionHistory                      // Lap and tyre data for session
	PacketTyreSets                            // Extended tyre set data
	PacketMotionEx                            // Extended motion data for player car

	packetCount
)

var packetNames = [packetCount]string{
	PacketMotion:              "motion",
	PacketSession:             "session",
	PacketLapData:             "lap_data",
	PacketEvent:               "event",
	PacketParticipants:        "participants",
	PacketCarSetups:           "car_setups",
	PacketCarTelemetry:        "car_telemetry",
	PacketCarStatus:           "car_status",
	PacketFinalClassification: "final_classification",
	PacketLobbyInfo:           "lobby_info",
	PacketCarDamage:           "car_damage",
	PacketSessionHistory:      "session_history",
	PacketTyreSets:            "tyre_sets",
	PacketMotionEx:            "motion_ex",
}

func (id PacketID) String() string {
	if id < packetCount {
		return packetNames[id]
	}
	return "unknown"
}

// Valid reports whether id names one of the known record kinds.
func (id PacketID) Valid() bool {
	return id < packetCount
}

// ParsePacketID maps a kind name such as "car_telemetry" back to its id.
func ParsePacketID(name string) (PacketID, bool) {
	i := lo.IndexOf(packetNames[:], name)
	if i < 0 {
		return 0, false
	}
	return PacketID(i), true
}

var carMotionLayout = NewLayout("car_motion_data",
	Float32("world_position_x"),     // World space X position - metres
	Float32("world_position_y"),     // World space Y position
	Float32("world_position_z"),     // World space Z position
	Float32("world_velocity_x"),     // Velocity in world space X – metres/s
	Float32("world_velocity_y"),     // Velocity in world space Y
	Float32("world_velocity_z"),     // Velocity in world space Z
	Int16("world_forward_dir_x"),    // World space forward X direction (normalised)
	Int16("world_forward_dir_y"),    // World space forward Y direction (normalised)
	Int16("world_forward_dir_z"),    // World space forward Z direction (normalised)
	Int16("world_right_dir_x"),      // World space right X direction (normalised)
	Int16("world_right_dir_y"),      // World space right Y direction (normalised)
	Int16("world_right_dir_z"),      // World space right Z direction (normalised)
	Float32("g_force_lateral"),      // Lateral G-Force component
	Float32("g_force_longitudinal"), // Longitudinal G-Force component
	Float32("g_force_vertical"),     // Vertical G-Force component
	Float32("yaw"),                  // Yaw angle in radians
	Float32("pitch"),                // Pitch angle in radians
	Float32("roll"),                 // Roll angle in radians
)

var motionLayout = NewLayout("motion",
	Nested("header", headerLayout),
	NestedArray("car_motion_data", carMotionLayout, MaxCars), // Data for all cars on track
)

var marshalZoneLayout = NewLayout("marshal_zone",
	Float32("zone_start"), // Fraction (0..1) of way through the lap the marshal zone starts
	Int8("zone_flag"),     // -1 = invalid/unknown, 0 = none, 1 = green, 2 = blue, 3 = yellow
)

var weatherForecastLayout = NewLayout("weather_forecast_sample",
	Uint8("session_type"),            // 0 = unknown, see appendix
	Uint8("time_offset"),             // Time in minutes the forecast is for
	Uint8("weather"),                 // 0 = clear, 1 = light cloud, 2 = overcast, 3 = light rain, 4 = heavy rain, 5 = storm
	Int8("track_temperature"),        // Track temp. in degrees Celsius
	Int8("track_temperature_change"), // Track temp. change – 0 = up, 1 = down, 2 = no change
	Int8("air_temperature"),          // Air temp. in degrees celsius
	Int8("air_temperature_change"),   // Air temp. change – 0 = up, 1 = down, 2 = no change
	Uint8("rain_percentage"),         // Rain percentage (0-100)
)

var sessionLayout = NewLayout("session",
	Nested("header", headerLayout),
	Uint8("weather"),
	Int8("track_temperature"),
	Int8("air_temperature"),
	Uint8("total_laps"),
	Uint16("track_length"), // metres
	Uint8("session_type"),
	Int8("track_id"), // -1 for unknown
	Uint8("formula"),
	Uint16("session_time_left"), // seconds
	Uint16("session_duration"),  // seconds
	Uint8("pit_speed_limit"),    // km/h
	Uint8("game_paused"),
	Uint8("is_spectating"),
	Uint8("spectator_car_index"),
	Uint8("sli_pro_native_support"),
	Uint8("num_marshal_zones"),
	NestedArray("marshal_zones", marshalZoneLayout, 21),
	Uint8("safety_car_status"), // 0 = no safety car, 1 = full, 2 = virtual, 3 = formation lap
	Uint8("network_game"),
	Uint8("num_weather_forecast_samples"),
	NestedArray("weather_forecast_samples", weatherForecastLayout, 56),
	Uint8("forecast_accuracy"), // 0 = Perfect, 1 = Approximate
	Uint8("ai_difficulty"),     // 0-110
	Uint32("season_link_identifier"),
	Uint32("weekend_link_identifier"),
	Uint32("session_link_identifier"),
	Uint8("pit_stop_window_ideal_lap"),
	Uint8("pit_stop_window_latest_lap"),
	Uint8("pit_stop_rejoin_position"),
	Uint8("steering_assist"),
	Uint8("braking_assist"),
	Uint8("gearbox_assist"),
	Uint8("pit_assist"),
	Uint8("pit_release_assist"),
	Uint8("ers_assist"),
	Uint8("drs_assist"),
	Uint8("dynamic_racing_line"),
	Uint8("dynamic_racing_line_type"),
	Uint8("game_mode"),
	Uint8("rule_set"),
	Uint32("time_of_day"), // minutes since midnight
	Uint8("session_length"),
	Uint8("speed_units_lead_player"),
	Uint8("temperature_units_lead_player"),
	Uint8("speed_units_secondary_player"),
	Uint8("temperature_units_secondary_player"),
	Uint8("num_safety_car_periods"),
	Uint8("num_virtual_safety_car_periods"),
	Uint8("num_red_flag_periods"),
)

var lapLayout = NewLayout("car_lap_data",
	Uint32("last_lap_time_in_ms"),
	Uint32("current_lap_time_in_ms"),
	Uint16("sector_1_time_in_ms"),
	Uint8("sector_1_time_minutes"),
	Uint16("sector_2_time_in_ms"),
	Uint8("sector_2_time_minutes"),
	Uint16("delta_to_car_in_front_in_ms"),
	Uint16("delta_to_race_leader_in_ms"),
	Float32("lap_distance"),     // could be negative if line hasn't been crossed yet
	Float32("total_distance"),   // could be negative if line hasn't been crossed yet
	Float32("safety_car_delta"), // seconds
	Uint8("car_position"),
	Uint8("current_lap_num"),
	Uint8("pit_status"), // 0 = none, 1 = pitting, 2 = in pit area
	Uint8("num_pit_stops"),
	Uint8("sector"), // 0 = sector1, 1 = sector2, 2 = sector3
	Uint8("current_lap_invalid"),
	Uint8("penalties"), // seconds
	Uint8("total_warnings"),
	Uint8("corner_cutting_warnings"),
	Uint8("num_unserved_drive_through_pens"),
	Uint8("num_unserved_stop_go_pens"),
	Uint8("grid_position"),
	Uint8("driver_status"), // 0 = in garage, 1 = flying lap, 2 = in lap, 3 = out lap, 4 = on track
	Uint8("result_status"),
	Uint8("pit_lane_timer_active"),
	Uint16("pit_lane_time_in_lane_in_ms"),
	Uint16("pit_stop_timer_in_ms"),
	Uint8("pit_stop_should_serve_pen"),
)

var lapDataLayout = NewLayout("lap_data",
	Nested("header", headerLayout),
	NestedArray("lap_data", lapLayout, MaxCars),
	Uint8("time_trial_pb_car_idx"),    // 255 if invalid
	Uint8("time_trial_rival_car_idx"), // 255 if invalid
)

var participantLayout = NewLayout("participant_data",
	Uint8("ai_controlled"), // AI (1) or Human (0)
	Uint8("driver_id"),     // 255 if network human
	Uint8("network_id"),
	Uint8("team_id"),
	Uint8("my_team"),
	Uint8("race_number"),
	Uint8("nationality"),
	Text("name", 48),           // null terminated, truncated with … if too long
	Uint8("your_telemetry"),    // 0 = restricted, 1 = public
	Uint8("show_online_names"), // 0 = off, 1 = on
	Uint8("platform"),          // 1 = Steam, 3 = PlayStation, 4 = Xbox, 6 = Origin, 255 = unknown
)

var participantsLayout = NewLayout("participants",
	Nested("header", headerLayout),
	Uint8("num_active_cars"),
	NestedArray("participants", participantLayout, MaxCars),
)

var carSetupLayout = NewLayout("car_setup_data",
	Uint8("front_wing"),
	Uint8("rear_wing"),
	Uint8("on_throttle"),
	Uint8("off_throttle"),
	Float32("front_camber"),
	Float32("rear_camber"),
	Float32("front_toe"),
	Float32("rear_toe"),
	Uint8("front_suspension"),
	Uint8("rear_suspension"),
	Uint8("front_anti_roll_bar"),
	Uint8("rear_anti_roll_bar"),
	Uint8("front_suspension_height"),
	Uint8("rear_suspension_height"),
	Uint8("brake_pressure"),
	Uint8("brake_bias"),
	Float32("rear_left_tyre_pressure"),
	Float32("rear_right_tyre_pressure"),
	Float32("front_left_tyre_pressure"),
	Float32("front_right_tyre_pressure"),
	Uint8("ballast"),
	Float32("fuel_load"),
)

var carSetupsLayout = NewLayout("car_setups",
	Nested("header", headerLayout),
	NestedArray("car_setups", carSetupLayout, MaxCars),
)

var carTelemetryLayout = NewLayout("car_telemetry_data",
	Uint16("speed"),                            // Speed of car in kilometres per hour
	Float32("throttle"),                        // Amount of throttle applied (0.0 to 1.0)
	Float32("steer"),                           // Steering (-1.0 (full lock left) to 1.0 (full lock right))
	Float32("brake"),                           // Amount of brake applied (0.0 to 1.0)
	Uint8("clutch"),                            // Amount of clutch applied (0 to 100)
	Int8("gear"),                               // Gear selected (1-8, N=0, R=-1)
	Uint16("engine_rpm"),                       // Engine RPM
	Uint8("drs"),                               // 0 = off, 1 = on
	Uint8("rev_lights_percent"),                // Rev lights indicator (percentage)
	Uint16("rev_lights_bit_value"),             // Rev lights (bit 0 = leftmost LED, bit 14 = rightmost LED)
	Array("brakes_temperature", Uint16Kind, 4), // Brakes temperature (celsius)
	Array("tyres_surface_temperature", Uint8Kind, 4), // Tyres surface temperature (celsius)
	Array("tyres_inner_temperature", Uint8Kind, 4),   // Tyres inner temperature (celsius)
	Uint16("engine_temperature"),                     // Engine temperature (celsius)
	Array("tyres_pressure", Float32Kind, 4),          // Tyres pressure (PSI)
	Array("surface_type", Uint8Kind, 4),              // Driving surface, see appendices
)

var carTelemetryPacketLayout = NewLayout("car_telemetry",
	Nested("header", headerLayout),
	// data for all cars on track
	NestedArray("car_telemetry_data", carTelemetryLayout, MaxCars),
	Uint8("mfd_panel_index"),                  // Index of MFD panel open - 255 = MFD closed
	Uint8("mfd_panel_index_secondary_player"), // See above
	Int8("suggested_gear"),                    // Suggested gear for the player (1-8), 0 if no gear suggested
)

var carStatusLayout = NewLayout("car_status_data",
	Uint8("traction_control"),   // Traction control - 0 = off, 1 = medium, 2 = full
	Uint8("anti_lock_brakes"),   // 0 (off) - 1 (on)
	Uint8("fuel_mix"),           // Fuel mix - 0 = lean, 1 = standard, 2 = rich, 3 = max
	Uint8("front_brake_bias"),   // Front brake bias (percentage)
	Uint8("pit_limiter_status"), // Pit limiter status - 0 = off, 1 = on
	Float32("fuel_in_tank"),     // Current fuel mass
	Float32("fuel_capacity"),    // Fuel capacity
	Float32("fuel_remaining_laps"),
	Uint16("max_rpm"),  // Cars max RPM, point of rev limiter
	Uint16("idle_rpm"), // Cars idle RPM
	Uint8("max_gears"),
	Uint8("drs_allowed"),              // 0 = not allowed, 1 = allowed
	Uint16("drs_activation_distance"), // 0 = DRS not available, non-zero - DRS will be available in [X] metres
	Uint8("actual_tyre_compound"),
	Uint8("visual_tyre_compound"),
	Uint8("tyres_age_laps"),
	Int8("vehicle_fia_flags"),    // -1 = invalid/unknown, 0 = none, 1 = green, 2 = blue, 3 = yellow
	Float32("engine_power_ice"),  // Engine power output of ICE (W)
	Float32("engine_power_mguk"), // Engine power output of MGU-K (W)
	Float32("ers_store_energy"),  // ERS energy store in Joules
	Uint8("ers_deploy_mode"),     // 0 = none, 1 = medium, 2 = hotlap, 3 = overtake
	Float32("ers_harvested_this_lap_mguk"),
	Float32("ers_harvested_this_lap_mguh"),
	Float32("ers_deployed_this_lap"),
	Uint8("network_paused"), // Whether the car is paused in a network game
)

var carStatusPacketLayout = NewLayout("car_status",
	Nested("header", headerLayout),
	NestedArray("car_status_data", carStatusLayout, MaxCars),
)

var finalClassificationLayout = NewLayout("final_classification_data",
	Uint8("position"),
	Uint8("num_laps"),
	Uint8("grid_position"),
	Uint8("points"),
	Uint8("num_pit_stops"),
	Uint8("result_status"),
	Uint32("best_lap_time_in_ms"),
	Float64("total_race_time"), // seconds without penalties
	Uint8("penalties_time"),    // seconds
	Uint8("num_penalties"),
	Uint8("num_tyre_stints"),
	Array("tyre_stints_actual", Uint8Kind, 8),
	Array("tyre_stints_visual", Uint8Kind, 8),
	Array("tyre_stints_end_laps", Uint8Kind, 8),
)

var finalClassificationPacketLayout = NewLayout("final_classification",
	Nested("header", headerLayout),
	Uint8("num_cars"),
	NestedArray("classification_data", finalClassificationLayout, MaxCars),
)

var lobbyInfoLayout = NewLayout("lobby_info_data",
	Uint8("ai_controlled"),
	Uint8("team_id"), // 255 if no team currently selected
	Uint8("nationality"),
	Uint8("platform"),
	Text("name", 48),
	Uint8("car_number"),
	Uint8("ready_status"), // 0 = not ready, 1 = ready, 2 = spectating
)

var lobbyInfoPacketLayout = NewLayout("lobby_info",
	Nested("header", headerLayout),
	Uint8("num_players"),
	NestedArray("lobby_players", lobbyInfoLayout, MaxCars),
)

var carDamageLayout = NewLayout("car_damage_data",
	Array("tyres_wear", Float32Kind, 4), // percentage
	Array("tyres_damage", Uint8Kind, 4),
	Array("brakes_damage", Uint8Kind, 4),
	Uint8("front_left_wing_damage"),
	Uint8("front_right_wing_damage"),
	Uint8("rear_wing_damage"),
	Uint8("floor_damage"),
	Uint8("diffuser_damage"),
	Uint8("sidepod_damage"),
	Uint8("drs_fault"), // 0 = OK, 1 = fault
	Uint8("ers_fault"), // 0 = OK, 1 = fault
	Uint8("gearbox_damage"),
	Uint8("engine_damage"),
	Uint8("engine_mguh_wear"),
	Uint8("engine_energy_store_wear"),
	Uint8("engine_control_electronics_wear"),
	Uint8("engine_internal_combustion_engine_wear"),
	Uint8("engine_mguk_wear"),
	Uint8("engine_turbo_charger_wear"),
	Uint8("engine_blown"),
	Uint8("engine_seized"),
)

var carDamagePacketLayout = NewLayout("car_damage",
	Nested("header", headerLayout),
	NestedArray("car_damage_data", carDamageLayout, MaxCars),
)

var lapHistoryLayout = NewLayout("lap_history_data",
	Uint32("lap_time_in_ms"),
	Uint16("sector1_time_in_ms"),
	Uint8("sector1_time_minutes"),
	Uint16("sector2_time_in_ms"),
	Uint8("sector2_time_minutes"),
	Uint16("sector3_time_in_ms"),
	Uint8("sector3_time_minutes"),
	Uint8("lap_valid_bit_flags"), // 0x01 lap valid, 0x02 sector 1, 0x04 sector 2, 0x08 sector 3
)

var tyreStintHistoryLayout = NewLayout("tyre_stint_history_data",
	Uint8("end_lap"), // 255 if current tyre
	Uint8("tyre_actual_compound"),
	Uint8("tyre_visual_compound"),
)

var sessionHistoryLayout = NewLayout("session_history",
	Nested("header", headerLayout),
	Uint8("car_idx"),
	Uint8("num_laps"), // including current partial lap
	Uint8("num_tyre_stints"),
	Uint8("best_lap_time_lap_num"),
	Uint8("best_sector1_lap_num"),
	Uint8("best_sector2_lap_num"),
	Uint8("best_sector3_lap_num"),
	NestedArray("lap_history_data", lapHistoryLayout, 100), // 100 laps of data max
	NestedArray("tyre_stints_history_data", tyreStintHistoryLayout, 8),
)

var tyreSetLayout = NewLayout("tyre_set_data",
	Uint8("actual_tyre_compound"),
	Uint8("visual_tyre_compound"),
	Uint8("wear"), // percentage
	Uint8("available"),
	Uint8("recommended_session"),
	Uint8("life_span"),      // Laps left in this tyre set
	Uint8("usable_life"),    // Max number of laps recommended for this compound
	Int16("lap_delta_time"), // milliseconds compared to fitted set
	Uint8("fitted"),
)

var tyreSetsLayout = NewLayout("tyre_sets",
	Nested("header", headerLayout),
	Uint8("car_idx"),
	NestedArray("tyre_set_data", tyreSetLayout, 20), // 13 (dry) + 7 (wet)
	Uint8("fitted_idx"),
)

var motionExLayout = NewLayout("motion_ex",
	Nested("header", headerLayout),
	Array("suspension_position", Float32Kind, 4), // RL, RR, FL, FR
	Array("suspension_velocity", Float32Kind, 4),
	Array("suspension_acceleration", Float32Kind, 4),
	Array("wheel_speed", Float32Kind, 4),
	Array("wheel_slip_ratio", Float32Kind, 4),
	Array("wheel_slip_angle", Float32Kind, 4),
	Array("wheel_lat_force", Float32Kind, 4),
	Array("wheel_long_force", Float32Kind, 4),
	Float32("height_of_cog_above_ground"),
	Float32("local_velocity_x"), // metres/s
	Float32("local_velocity_y"),
	Float32("local_velocity_z"),
	Float32("angular_velocity_x"), // radians/s
	Float32("angular_velocity_y"),
	Float32("angular_velocity_z"),
	Float32("angular_acceleration_x"), // radians/s/s
	Float32("angular_acceleration_y"),
	Float32("angular_acceleration_z"),
	Float32("front_wheels_angle"), // radians
	Array("wheel_vert_force", Float32Kind, 4),
)

var registry = [packetCount]*Layout{
	PacketMotion:              motionLayout,
	PacketSession:             sessionLayout,
	PacketLapData:             lapDataLayout,
	PacketEvent:               eventLayout,
	PacketParticipants:        participantsLayout,
	PacketCarSetups:           carSetupsLayout,
	PacketCarTelemetry:        carTelemetryPacketLayout,
	PacketCarStatus:           carStatusPacketLayout,
	PacketFinalClassification: finalClassificationPacketLayout,
	PacketLobbyInfo:           lobbyInfoPacketLayout,
	PacketCarDamage:           carDamagePacketLayout,
	PacketSessionHistory:      sessionHistoryLayout,
	PacketTyreSets:            tyreSetsLayout,
	PacketMotionEx:            motionExLayout,
}

// LayoutFor returns the registered layout of a record kind.
func LayoutFor(id PacketID) (*Layout, bool) {
	if !id.Valid() {
		return nil, false
	}
	return registry[id], true
}

// Layouts returns all registered layouts in id order.
func Layouts() []*Layout {
	return lo.Map(registry[:], func(l *Layout, _ int) *Layout { return l })
}
