package stream

// Config for the ledtween binary.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Stream struct {
		FrameRate float64 `yaml:"frameRate"`
		Playlist  string  `yaml:"playlist"`
	} `yaml:"stream"`
	Api struct {
		Addr string `yaml:"addr"`
	} `yaml:"api"`
}
