package content

import (
	"fmt"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
)

var shortUnits = mustUnits("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// mustUnits decodes a durafmt unit list and panics if it is malformed.
func mustUnits(list string) durafmt.Units {
	u, err := durafmt.DefaultUnitsCoder.Decode(list)
	if err != nil {
		panic(fmt.Sprintf("duration units %q: %v", list, err))
	}
	return u
}

// Info is what the about tab reports.
type Info struct {
	Name      string
	Version   string
	Website   string
	Started   time.Time
	Now       time.Time
	HeapInUse uint64
}

// CurrentInfo fills the runtime fields of an Info.
func CurrentInfo(name, version, website string, started time.Time) Info {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return Info{
		Name:      name,
		Version:   version,
		Website:   website,
		Started:   started,
		Now:       time.Now(),
		HeapInUse: ms.HeapInuse,
	}
}

// About builds the about tab.
func About(info Info) Tab {
	up := info.Now.Sub(info.Started)
	if up < 0 {
		up = 0
	}
	uptime := durafmt.Parse(up.Truncate(time.Second)).LimitFirstN(2).Format(shortUnits)
	if up < time.Second {
		uptime = "just started"
	}
	return Tab{
		Title: "About",
		Lines: []string{
			fmt.Sprintf("%s %s", info.Name, info.Version),
			"",
			fmt.Sprintf("Built with %s for %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
			fmt.Sprintf("Running for %s", uptime),
			fmt.Sprintf("Heap in use: %s", humanize.Bytes(info.HeapInUse)),
			"",
			info.Website,
		},
	}
}
