// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package odp

// Static XML templates for the OpenDocument package parts. Assembled once at
// program start; only content.xml and meta.xml carry generated data.

// Mimetype is the package media type. It is written byte-for-byte as the
// first, uncompressed archive entry; consumers sniff it before running any
// general unzip logic, so it must never be re-encoded or escaped.
const Mimetype = "application/vnd.oasis.opendocument.presentation"

// manifestXML lists the package root and the three XML parts. Exactly these
// four entries, nothing else.
const manifestXML = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0">
  <manifest:file-entry manifest:full-path="/" manifest:media-type="application/vnd.oasis.opendocument.presentation"/>
  <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
  <manifest:file-entry manifest:full-path="styles.xml" manifest:media-type="text/xml"/>
  <manifest:file-entry manifest:full-path="meta.xml" manifest:media-type="text/xml"/>
</manifest:manifest>`

// contentNamespaces is the full prefix set Impress expects on
// office:document-content.
const contentNamespaces = `xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
                        xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
                        xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"
                        xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"
                        xmlns:draw="urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
                        xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
                        xmlns:xlink="http://www.w3.org/1999/xlink"
                        xmlns:dc="http://purl.org/dc/elements/1.1/"
                        xmlns:meta="urn:oasis:names:tc:opendocument:xmlns:meta:1.0"
                        xmlns:number="urn:oasis:names:tc:opendocument:xmlns:datastyle:1.0"
                        xmlns:svg="urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"
                        xmlns:chart="urn:oasis:names:tc:opendocument:xmlns:chart:1.0"
                        xmlns:dr3d="urn:oasis:names:tc:opendocument:xmlns:dr3d:1.0"
                        xmlns:math="http://www.w3.org/1998/Math/MathML"
                        xmlns:form="urn:oasis:names:tc:opendocument:xmlns:form:1.0"
                        xmlns:script="urn:oasis:names:tc:opendocument:xmlns:script:1.0"
                        xmlns:ooo="http://openoffice.org/2004/office"
                        xmlns:ooow="http://openoffice.org/2004/writer"
                        xmlns:oooc="http://openoffice.org/2004/calc"
                        xmlns:dom="http://www.w3.org/2001/xml-events"
                        xmlns:xforms="http://www.w3.org/2002/xforms"
                        xmlns:xsd="http://www.w3.org/2001/XMLSchema"
                        xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
                        xmlns:rpt="http://openoffice.org/2005/report"
                        xmlns:of="urn:oasis:names:tc:opendocument:xmlns:of:1.2"
                        xmlns:xhtml="http://www.w3.org/1999/xhtml"
                        xmlns:grddl="http://www.w3.org/2003/g/data-view#"
                        xmlns:tableooo="http://openoffice.org/2009/table"
                        xmlns:field="urn:oasis:names:tc:opendocument:xmlns:field:1.0"
                        xmlns:formx="urn:oasis:names:tc:opendocument:xmlns:form:1.0"
                        xmlns:css3t="http://www.w3.org/TR/css3-text/"
                        office:version="1.2"`

// contentHeader opens content.xml: namespaces, automatic styles (one
// drawing-page style, three graphic styles, three paragraph styles for
// title/subtitle/body sizes), the master page, and the presentation body.
const contentHeader = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content ` + contentNamespaces + `>
  <office:scripts/>
  <office:font-face-decls/>
  <office:automatic-styles>
    <style:style style:name="dp1" style:family="drawing-page">
      <style:drawing-page-properties draw:background-size="full" draw:fill="none"/>
    </style:style>
    <style:style style:name="gr1" style:family="graphic" style:parent-style-name="standard">
      <style:graphic-properties draw:stroke="none" draw:fill="none"/>
    </style:style>
    <style:style style:name="gr2" style:family="graphic" style:parent-style-name="standard">
      <style:graphic-properties draw:stroke="none" draw:fill="none"/>
    </style:style>
    <style:style style:name="gr3" style:family="graphic" style:parent-style-name="standard">
      <style:graphic-properties draw:stroke="none" draw:fill="none"/>
    </style:style>
    <style:style style:name="P1" style:family="paragraph" style:parent-style-name="standard">
      <style:paragraph-properties fo:text-align="center" fo:margin-top="0.423cm" fo:margin-bottom="0.212cm"/>
      <style:text-properties fo:font-size="24pt" style:font-size-asian="24pt" style:font-size-complex="24pt" fo:font-weight="bold"/>
    </style:style>
    <style:style style:name="P2" style:family="paragraph" style:parent-style-name="standard">
      <style:paragraph-properties fo:margin-top="0.212cm" fo:margin-bottom="0.212cm"/>
      <style:text-properties fo:font-size="18pt" style:font-size-asian="18pt" style:font-size-complex="18pt" fo:font-weight="bold"/>
    </style:style>
    <style:style style:name="P3" style:family="paragraph" style:parent-style-name="standard">
      <style:paragraph-properties fo:margin-top="0.106cm" fo:margin-bottom="0.106cm"/>
      <style:text-properties fo:font-size="12pt" style:font-size-asian="12pt" style:font-size-complex="12pt"/>
    </style:style>
  </office:automatic-styles>
  <office:master-styles>
    <style:master-page style:name="Standard" style:page-layout-name="AL1T0">
      <style:header/>
      <style:footer/>
    </style:master-page>
  </office:master-styles>
  <office:body>
    <office:presentation>`

// contentFooter closes the presentation body.
const contentFooter = `    </office:presentation>
  </office:body>
</office:document-content>`

// stylesXML is fully static; all styling lives in content.xml's automatic
// styles.
const stylesXML = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-styles xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
                       xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0"
                       xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0"
                       xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0"
                       xmlns:draw="urn:oasis:names:tc:opendocument:xmlns:drawing:1.0"
                       xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0"
                       xmlns:xlink="http://www.w3.org/1999/xlink"
                       xmlns:dc="http://purl.org/dc/elements/1.1/"
                       xmlns:meta="urn:oasis:names:tc:opendocument:xmlns:meta:1.0"
                       xmlns:number="urn:oasis:names:tc:opendocument:xmlns:datastyle:1.0"
                       xmlns:svg="urn:oasis:names:tc:opendocument:xmlns:svg-compatible:1.0"
                       xmlns:chart="urn:oasis:names:tc:opendocument:xmlns:chart:1.0"
                       xmlns:dr3d="urn:oasis:names:tc:opendocument:xmlns:dr3d:1.0"
                       xmlns:math="http://www.w3.org/1998/Math/MathML"
                       xmlns:form="urn:oasis:names:tc:opendocument:xmlns:form:1.0"
                       xmlns:script="urn:oasis:names:tc:opendocument:xmlns:script:1.0"
                       xmlns:ooo="http://openoffice.org/2004/office"
                       xmlns:ooow="http://openoffice.org/2004/writer"
                       xmlns:oooc="http://openoffice.org/2004/calc"
                       xmlns:dom="http://www.w3.org/2001/xml-events"
                       xmlns:xforms="http://www.w3.org/2002/xforms"
                       xmlns:xsd="http://www.w3.org/2001/XMLSchema"
                       xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
                       xmlns:rpt="http://openoffice.org/2005/report"
                       xmlns:of="urn:oasis:names:tc:opendocument:xmlns:of:1.2"
                       xmlns:xhtml="http://www.w3.org/1999/xhtml"
                       xmlns:grddl="http://www.w3.org/2003/g/data-view#"
                       xmlns:tableooo="http://openoffice.org/2009/table"
                       xmlns:field="urn:oasis:names:tc:opendocument:xmlns:field:1.0"
                       xmlns:formx="urn:oasis:names:tc:opendocument:xmlns:form:1.0"
                       xmlns:css3t="http://www.w3.org/TR/css3-text/"
                       office:version="1.2">
  <office:font-face-decls/>
  <office:automatic-styles/>
  <office:master-styles/>
</office:document-styles>`

// metaXMLFormat takes escaped title, description, creator, and an RFC 3339
// timestamp.
const metaXMLFormat = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-meta xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"
                      xmlns:meta="urn:oasis:names:tc:opendocument:xmlns:meta:1.0"
                      xmlns:dc="http://purl.org/dc/elements/1.1/"
                      xmlns:xlink="http://www.w3.org/1999/xlink"
                      office:version="1.2">
  <office:meta>
    <dc:title>%s</dc:title>
    <dc:description>%s</dc:description>
    <dc:creator>%s</dc:creator>
    <dc:date>%s</dc:date>
  </office:meta>
</office:document-meta>`
