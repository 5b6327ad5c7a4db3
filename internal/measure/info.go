package measure

// Info is the running aggregate of one key.
type Info struct {
	Min   Value
	Max   Value
	Sum   Value
	Count uint64
}

func NewInfo(value Value) *Info {
	return &Info{
		Min:   value,
		Max:   value,
		Sum:   value,
		Count: 1,
	}
}

func (info *Info) Update(value Value) {
	info.Sum += value
	info.Count++
	if info.Min > value {
		info.Min = value
	}
	if info.Max < value {
		info.Max = value
	}
}

func (info *Info) Merge(other *Info) {
	if info.Min > other.Min {
		info.Min = other.Min
	}
	if info.Max < other.Max {
		info.Max = other.Max
	}
	info.Sum += other.Sum
	info.Count += other.Count
}

func (info *Info) Avg() Value {
	return Avg(info.Sum, info.Count)
}

// AppendTo appends min/avg/max.
func (info *Info) AppendTo(dst []byte) []byte {
	dst = AppendValue(dst, info.Min)
	dst = append(dst, '/')
	dst = AppendValue(dst, info.Avg())
	dst = append(dst, '/')
	return AppendValue(dst, info.Max)
}
