package pipe

// PipelineSpec is the pipe geometry and pressure. All fields in the units of
// their JSON names; value is treated as read-only after Validate.
type PipelineSpec struct {
	DiameterMM      float64 `json:"diameter_mm"`
	WallThicknessMM float64 `json:"wall_thickness_mm"`
	PressureMPa     float64 `json:"pressure_mpa"`
}

// MaterialSpec holds the specified minimum strengths of the line pipe grade.
type MaterialSpec struct {
	SMYSMPa float64 `json:"smys_mpa"`
	SMTSMPa float64 `json:"smts_mpa"`
}

// DefectSpec is a single axially oriented metal-loss defect.
type DefectSpec struct {
	LengthMM          float64 `json:"length_mm"`
	DepthMM           float64 `json:"depth_mm"`
	CorrosionRateMMYr float64 `json:"corrosion_rate_mm_yr"`
}

func (p PipelineSpec) Validate() error {
	if p.DiameterMM <= 0 {
		return &InvalidInputError{Field: "diameter", Reason: "must be positive"}
	}
	if p.WallThicknessMM <= 0 {
		return &InvalidInputError{Field: "wall thickness", Reason: "must be positive"}
	}
	if p.WallThicknessMM >= p.DiameterMM/2 {
		return &InvalidInputError{Field: "wall thickness", Reason: "must be less than half the diameter"}
	}
	if p.PressureMPa < 0 {
		return &InvalidInputError{Field: "pressure", Reason: "must not be negative"}
	}
	return nil
}

func (m MaterialSpec) Validate() error {
	if m.SMYSMPa <= 0 {
		return &InvalidInputError{Field: "SMYS", Reason: "must be positive"}
	}
	if m.SMTSMPa <= m.SMYSMPa {
		return &InvalidInputError{Field: "SMTS", Reason: "must exceed SMYS"}
	}
	return nil
}

// Validate checks the defect against the pipe it sits in; depth must stay
// strictly below the wall thickness.
func (d DefectSpec) Validate(p PipelineSpec) error {
	if d.LengthMM <= 0 {
		return &InvalidInputError{Field: "defect length", Reason: "must be positive"}
	}
	if d.DepthMM < 0 {
		return &InvalidInputError{Field: "defect depth", Reason: "must not be negative"}
	}
	if d.DepthMM >= p.WallThicknessMM {
		return &InvalidInputError{Field: "defect depth", Reason: "must be less than wall thickness"}
	}
	if d.CorrosionRateMMYr < 0 {
		return &InvalidInputError{Field: "corrosion rate", Reason: "must not be negative"}
	}
	return nil
}

// RelativeDepth is d/t.
func (d DefectSpec) RelativeDepth(p PipelineSpec) float64 {
	return d.DepthMM / p.WallThicknessMM
}

// LengthParam is the dimensionless defect length z = L^2 / (D*t), shared by
// both assessment methods.
func (d DefectSpec) LengthParam(p PipelineSpec) float64 {
	return d.LengthMM * d.LengthMM / (p.DiameterMM * p.WallThicknessMM)
}
