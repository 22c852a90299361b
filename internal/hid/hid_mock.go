package hid

// MockDevice is an in-memory Device for tests. Writes are recorded in
// order; failures are scripted per call type.
type MockDevice struct {
	Writes   [][]byte
	Features [][]byte
	Feature  []byte // returned by GetFeature (after the report ID byte)

	WriteErr   error
	FeatureErr error
	GetErr     error

	Closed bool
}

func (d *MockDevice) Write(p []byte) (int, error) {
	if d.WriteErr != nil {
		return 0, d.WriteErr
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	d.Writes = append(d.Writes, buf)
	return len(p), nil
}

func (d *MockDevice) SendFeature(p []byte) (int, error) {
	if d.FeatureErr != nil {
		return 0, d.FeatureErr
	}
	buf := make([]byte, len(p))
	copy(buf, p)
	d.Features = append(d.Features, buf)
	return len(p), nil
}

func (d *MockDevice) GetFeature(p []byte) (int, error) {
	if d.GetErr != nil {
		return 0, d.GetErr
	}
	n := copy(p[1:], d.Feature)
	return n + 1, nil
}

func (d *MockDevice) Close() error {
	d.Closed = true
	return nil
}

// MockManager resolves vendor/product pairs to scripted devices or errors.
type MockManager struct {
	Devices map[uint32]Device // key: vid<<16 | pid
	OpenErr map[uint32]error
}

func mockKey(vid, pid uint16) uint32 { return uint32(vid)<<16 | uint32(pid) }

// Add registers a device for the pair.
func (m *MockManager) Add(vid, pid uint16, d Device) {
	if m.Devices == nil {
		m.Devices = make(map[uint32]Device)
	}
	m.Devices[mockKey(vid, pid)] = d
}

// Fail makes opening the pair return err.
func (m *MockManager) Fail(vid, pid uint16, err error) {
	if m.OpenErr == nil {
		m.OpenErr = make(map[uint32]error)
	}
	m.OpenErr[mockKey(vid, pid)] = err
}

func (m *MockManager) List() ([]Info, error) { return nil, nil }

func (m *MockManager) OpenVIDPID(vid, pid uint16) (Device, error) {
	if err, ok := m.OpenErr[mockKey(vid, pid)]; ok {
		return nil, err
	}
	if d, ok := m.Devices[mockKey(vid, pid)]; ok {
		return d, nil
	}
	return nil, ErrNotFound
}
