package phugoid

import (
	"fmt"
	"os"
	"time"
)

// ExportConfig configures the exporting of a traced flight path.
type ExportConfig struct {
	Filename     string
	AsCSV        bool
	Timestamp    bool
	CSVAppend    func(st TraceState) string // Custom export (do not include leading comma)
	CSVAppendHdr func() string              // Header for the custom export
}

// IsUseless returns whether this config doesn't actually do anything.
func (c ExportConfig) IsUseless() bool {
	return !c.AsCSV || c.Filename == ""
}

// createCSVFile returns a file which requires a defer close statement!
func createCSVFile(conf ExportConfig) *os.File {
	config := phugoidConfig()
	var filename string
	if conf.Timestamp {
		t := time.Now()
		filename = fmt.Sprintf("%s/path-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", config.outputDir, conf.Filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/path-%s.csv", config.outputDir, conf.Filename)
	}
	f, err := os.Create(filename)
	if err != nil {
		panic(err)
	}
	// Header
	f.WriteString(fmt.Sprintf(`# Creation date (UTC): %s
# Records are step, x, z, theta, R. theta is the heading in radians.
#   z is the depth (increases downward); negate it to plot altitude.
step,x,z,theta,R`, time.Now().UTC()))
	if conf.CSVAppendHdr != nil {
		// Append the headers for the appended columns.
		f.WriteString("," + conf.CSVAppendHdr())
	}
	f.WriteString("\n")
	return f
}

// StreamStates streams the output of the channel to the CSV file.
func StreamStates(conf ExportConfig, stateChan <-chan TraceState) {
	var f *os.File
	for state := range stateChan {
		if f == nil {
			f = createCSVFile(conf)
			defer f.Close()
		}
		line := fmt.Sprintf("%d,%f,%f,%f,%f", state.Step, state.X, state.Z, state.Θ, state.R)
		if conf.CSVAppend != nil {
			line += "," + conf.CSVAppend(state)
		}
		f.WriteString(line + "\n")
	}
	if f != nil {
		fmt.Printf("Saving file to %s.\n", f.Name())
	}
}
