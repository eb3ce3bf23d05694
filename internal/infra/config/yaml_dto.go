package config

type YAMLSeed struct {
	Newspapers  []YAMLNewspaper  `yaml:"newspapers"`
	Editors     []YAMLPerson     `yaml:"editors"`
	Subscribers []YAMLSubscriber `yaml:"subscribers"`
}

type YAMLNewspaper struct {
	ID        int64       `yaml:"id"`
	Name      string      `yaml:"name"`
	Frequency int         `yaml:"frequency"`
	Price     float64     `yaml:"price"`
	Issues    []YAMLIssue `yaml:"issues"`
}

type YAMLIssue struct {
	ID          int64  `yaml:"id"`
	ReleaseDate string `yaml:"release_date"`
	Released    bool   `yaml:"released"`
	Pages       int    `yaml:"pages"`
	EditorID    int64  `yaml:"editor_id"`
}

type YAMLPerson struct {
	ID      int64  `yaml:"id"`
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
}

type YAMLSubscriber struct {
	YAMLPerson    `yaml:",inline"`
	Subscriptions []int64        `yaml:"subscriptions"`
	Deliveries    []YAMLDelivery `yaml:"deliveries"`
}

type YAMLDelivery struct {
	PaperID int64 `yaml:"paper_id"`
	IssueID int64 `yaml:"issue_id"`
}
