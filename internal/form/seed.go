package form

// samples are the rows a fresh form starts with, so a first submit renders
// something without any typing.
var samples = []DraftEntry{
	{Name: "Home", LatitudeText: "9.4536911", LongitudeText: "77.8090363"},
	{Name: "Bus Stop", LatitudeText: "9.45511705", LongitudeText: "77.8015092"},
	{Name: "Church", LatitudeText: "9.4503574", LongitudeText: "77.7990665"},
	{Name: "School", LatitudeText: "9.4492444", LongitudeText: "77.7882269"},
}

// SampleSeed returns the first n sample rows. Names are cleared when named is
// false.
func SampleSeed(n int, named bool) []DraftEntry {
	out := make([]DraftEntry, min(n, len(samples)))
	copy(out, samples)
	if !named {
		for i := range out {
			out[i].Name = ""
		}
	}
	return out
}
