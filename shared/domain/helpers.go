package domain

import (
	"fmt"
	"time"
)

// for debug
func (d *Discussion) String() string {
	s := fmt.Sprintf("[id:%s, author:%s, created:%s, likes:%d, dislikes:%d, pinned:%v, poll:%v, replies:[",
		d.Id, d.Author, d.Timestamp.Format(time.StampMilli), d.Likes, d.Dislikes, d.IsPinned, d.IsPoll)
	for i, r := range d.Replies {
		if i > 0 {
			s += ", "
		}
		s += r.Id
	}
	return s + "]]"
}

func (f *Forum) String() string {
	return fmt.Sprintf("[id:%s, name:%s, rating:%.2f, notes:%d, discussions:%d]",
		f.Id, f.Name, f.Rating, len(f.Notes), len(f.Discussions))
}
