package stimulus

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// SampledPoint is one motion path entry. Idx is the point's 0-based
// position in playback order, assigned once at sampling time.
type SampledPoint struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Idx int     `json:"idx"`
}

// MotionPath is the ordered point sequence of one playback session. Its
// JSON form is a UTF-8 array of records in playback order.
type MotionPath []SampledPoint

// plainPoint is the un-indexed record written for interactive playback.
type plainPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Write serializes the motion path as an indented JSON array. With
// indexed set each record carries its playback index ({"x","y","idx"});
// otherwise only the coordinates are written ({"x","y"}).
func (mp MotionPath) Write(w io.Writer, indexed bool) error {
	var data []byte
	var err error
	if indexed {
		data, err = json.MarshalIndent([]SampledPoint(mp), "", "    ")
	} else {
		pp := make([]plainPoint, len(mp))
		for i, p := range mp {
			pp[i] = plainPoint{X: p.X, Y: p.Y}
		}
		data, err = json.MarshalIndent(pp, "", "    ")
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPointsIO, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("%w: %v", ErrPointsIO, err)
	}
	return nil
}

// ReadMotionPath parses a motion path written by Write in either mode.
// Records without an idx field take their array position; records with
// one must match it, since playback order is the array order.
func ReadMotionPath(r io.Reader) (MotionPath, error) {
	var raw []struct {
		X   *float64 `json:"x"`
		Y   *float64 `json:"y"`
		Idx *int     `json:"idx"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPointsFormat, err)
	}
	mp := make(MotionPath, len(raw))
	for i, rec := range raw {
		if rec.X == nil || rec.Y == nil {
			return nil, fmt.Errorf("%w: record %d missing coordinates", ErrPointsFormat, i)
		}
		if rec.Idx != nil && *rec.Idx != i {
			return nil, fmt.Errorf("%w: record %d carries index %d", ErrPointsFormat, i, *rec.Idx)
		}
		mp[i] = SampledPoint{X: *rec.X, Y: *rec.Y, Idx: i}
	}
	return mp, nil
}

// WriteFile writes the motion path to a file, creating or truncating it.
func (mp MotionPath) WriteFile(name string, indexed bool) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPointsIO, err)
	}
	if err := mp.Write(f, indexed); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrPointsIO, err)
	}
	return nil
}

// ReadMotionPathFile reads a motion path file written by WriteFile.
func ReadMotionPathFile(name string) (MotionPath, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPointsIO, err)
	}
	defer f.Close()
	return ReadMotionPath(f)
}
