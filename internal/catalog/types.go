package catalog

// Course is one grade+subject curriculum.
type Course struct {
	ID          string
	Grade       string
	Subject     string
	Title       string
	Description string
	Units       []Unit
}

// Unit is a topic grouping within a course.
type Unit struct {
	ID      string
	Title   string
	Lessons []Lesson
}

// Lesson is an ordered sequence of content blocks. ID is the persistence key.
type Lesson struct {
	ID          string
	Title       string
	Description string
	Content     []Block
}

// Block is one renderable piece of lesson content. The set of
// implementations is closed: TextBlock, CalloutBlock, ExampleBlock and
// QuizBlock.
type Block interface {
	block()
}

// TextBlock is markdown-formatted prose.
type TextBlock struct {
	Content string
}

// CalloutVariant selects the callout tone.
type CalloutVariant string

const (
	CalloutInfo    CalloutVariant = "info"
	CalloutWarning CalloutVariant = "warning"
	CalloutTip     CalloutVariant = "tip"
)

// CalloutBlock is a highlighted aside.
type CalloutBlock struct {
	Title   string
	Content string
	Variant CalloutVariant
}

// ExampleBlock is a worked problem revealed one step at a time.
type ExampleBlock struct {
	Title   string
	Problem string
	Steps   []string
}

// QuizBlock is a scored multiple-choice quiz.
type QuizBlock struct {
	ID        string
	Title     string
	Questions []QuizQuestion
}

func (TextBlock) block()    {}
func (CalloutBlock) block() {}
func (ExampleBlock) block() {}
func (QuizBlock) block()    {}

// QuizQuestion is a single multiple-choice question.
// CorrectIndex is always a valid index into Options.
type QuizQuestion struct {
	ID           string   `yaml:"id"`
	Text         string   `yaml:"text"`
	Options      []string `yaml:"options"`
	CorrectIndex int      `yaml:"correct_index"`
	Explanation  string   `yaml:"explanation"`
}

// TopicDetail is the material a unit's three lessons are built from.
type TopicDetail struct {
	Definition string         `yaml:"definition"`
	Why        string         `yaml:"why"`
	Objectives []string       `yaml:"objectives"`
	Problem    string         `yaml:"problem"`
	Steps      []string       `yaml:"steps"`
	Quiz       []QuizQuestion `yaml:"quiz"`
}

// Quizzes returns the quiz blocks of the lesson in document order.
func (l Lesson) Quizzes() []QuizBlock {
	var out []QuizBlock
	for _, b := range l.Content {
		if q, ok := b.(QuizBlock); ok {
			out = append(out, q)
		}
	}
	return out
}

// LessonCount returns the total number of lessons across all units.
func (c Course) LessonCount() int {
	n := 0
	for _, u := range c.Units {
		n += len(u.Lessons)
	}
	return n
}
