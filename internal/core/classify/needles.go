package classify

// needles answers "does text contain any of these substrings" in one pass
// using an Aho-Corasick automaton over bytes. A fixed 256-way transition
// table per node keeps the scan free of map lookups

type acNode struct {
	// trans[b] = next state or -1 if absent
	trans [256]int32
	fail  int32
	// out is the lowest needle index ending here, including via fail links, -1 if none
	out int32
}

type needles struct {
	words []string
	nodes []acNode
}

func newNode() acNode {
	n := acNode{out: -1}
	for i := range n.trans {
		n.trans[i] = -1
	}
	return n
}

func compileNeedles(words []string) *needles {
	n := &needles{words: words, nodes: []acNode{newNode()}}
	for i, w := range words {
		n.add([]byte(w), int32(i))
	}
	n.build()
	return n
}

func (n *needles) add(pat []byte, id int32) {
	if len(pat) == 0 {
		return
	}
	state := int32(0)
	for _, b := range pat {
		nxt := n.nodes[state].trans[b]
		if nxt == -1 {
			nxt = int32(len(n.nodes))
			n.nodes[state].trans[b] = nxt
			n.nodes = append(n.nodes, newNode())
		}
		state = nxt
	}
	if cur := n.nodes[state].out; cur == -1 || id < cur {
		n.nodes[state].out = id
	}
}

// build computes failure links breadth first and folds outputs along them
func (n *needles) build() {
	q := make([]int32, 0, len(n.nodes))
	for b := range 256 {
		if s := n.nodes[0].trans[b]; s != -1 {
			n.nodes[s].fail = 0
			q = append(q, s)
		}
	}
	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b := range 256 {
			s := n.nodes[r].trans[b]
			if s == -1 {
				continue
			}
			q = append(q, s)

			f := n.nodes[r].fail
			for f != 0 && n.nodes[f].trans[b] == -1 {
				f = n.nodes[f].fail
			}
			if nxt := n.nodes[f].trans[b]; nxt != -1 {
				n.nodes[s].fail = nxt
			} else {
				n.nodes[s].fail = 0
			}
			if fo := n.nodes[n.nodes[s].fail].out; fo != -1 && (n.nodes[s].out == -1 || fo < n.nodes[s].out) {
				n.nodes[s].out = fo
			}
		}
	}
}

// first returns the first needle found scanning text left to right, empty when none occurs
func (n *needles) first(text []byte) string {
	if n == nil || len(n.words) == 0 {
		return ""
	}
	state := int32(0)
	for _, b := range text {
		for state != 0 && n.nodes[state].trans[b] == -1 {
			state = n.nodes[state].fail
		}
		if nxt := n.nodes[state].trans[b]; nxt != -1 {
			state = nxt
		}
		if id := n.nodes[state].out; id != -1 {
			return n.words[id]
		}
	}
	return ""
}
